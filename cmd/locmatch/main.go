// The locmatch command matches slash-delimited paths against a set of
// wildcard path patterns.
//
// Example:
//
//	$ locmatch match -p 'assets/*/geo' assets/ship/geo assets/ship vehicles
//	assets/ship/geo	Match
//	assets/ship	DescendantMatch
//	vehicles	NoMatch
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scenewalk/locmatch"
)

var (
	cfgFile     string
	patternFile string
	patternArgs []string
)

var rootCmd = &cobra.Command{
	Use:          "locmatch",
	Short:        "match paths against wildcard path patterns",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.locmatch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&patternFile, "file", "f", "", "file with one pattern per line")
	rootCmd.PersistentFlags().StringArrayVarP(&patternArgs, "pattern", "p", nil, "pattern to index (repeatable)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".locmatch")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && patternFile == "" {
		patternFile = viper.GetString("pattern-file")
	}
}

// buildMatcher indexes the patterns named by the flags and config file.
func buildMatcher() (*locmatch.Matcher, error) {
	m := locmatch.New()
	if patternFile != "" {
		if _, err := m.AddFromFile(afero.NewOsFs(), patternFile); err != nil {
			return nil, err
		}
	}
	for _, p := range patternArgs {
		m.Add(p)
	}
	if m.Empty() {
		return nil, errors.New("no patterns given (use -f or -p)")
	}
	return m, nil
}
