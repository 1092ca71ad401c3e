package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [path...]",
	Short: "report the match result for each path",
	Long: `Report the match result for each path given as an argument, or read
from stdin one per line when no arguments are given. Results are Match,
DescendantMatch, or NoMatch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMatcher()
		if err != nil {
			return err
		}

		if len(args) > 0 {
			for _, p := range args {
				fmt.Printf("%s\t%s\n", p, m.Match(p))
			}
			return nil
		}

		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			fmt.Printf("%s\t%s\n", sc.Text(), m.Match(sc.Text()))
		}
		return sc.Err()
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
