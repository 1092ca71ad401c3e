package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "list the patterns stored in the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMatcher()
		if err != nil {
			return err
		}
		for _, p := range m.Patterns() {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
