package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenewalk/locmatch"
)

var keepExact bool

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "filter a stream of paths down to those worth visiting",
	Long: `Read paths from stdin and print those that match a pattern or lead
to one, the way a tree traversal would prune on NoMatch. With --exact, only
exact matches are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMatcher()
		if err != nil {
			return err
		}

		keep := locmatch.DescendantMatch
		if keepExact {
			keep = locmatch.Match
		}

		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if m.Match(sc.Text()) >= keep {
				fmt.Println(sc.Text())
			}
		}
		return sc.Err()
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&keepExact, "exact", false, "keep exact matches only")
	rootCmd.AddCommand(pruneCmd)
}
