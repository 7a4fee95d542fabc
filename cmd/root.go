package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "toyc",
	Short: "ToyC syntax checker",
	Long: `toyc validates whether a source text belongs to the ToyC language.

Commands:
  check   Parse a source file and report accept or reject
  tokens  Dump the token stream of a source file
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a toyc.toml configuration file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(CheckCmd)
	rootCmd.AddCommand(TokensCmd)
}
