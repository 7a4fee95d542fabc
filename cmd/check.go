package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyc-lang/toyc/internal/checker"
	"github.com/toyc-lang/toyc/internal/checker/config"
	"github.com/toyc-lang/toyc/internal/checker/report"
)

var linesOnly bool

// check: source file -> accept/reject verdict
var CheckCmd = &cobra.Command{
	Use:   "check <source>",
	Short: "Parse a ToyC source file and report accept or reject",
	Long: `Parse a ToyC source file and print a verdict line, "accept" or
"reject", followed by one diagnostic per offending source line. Use "-"
to read from stdin. Exits nonzero on reject.`,
	Args: cobra.ExactArgs(1),
	RunE: checkRun,
}

func init() {
	CheckCmd.Flags().BoolVar(&linesOnly, "lines-only", false, "print bare line numbers instead of full diagnostics")
}

func checkRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := readInput(args[0])
	if err != nil {
		return err
	}

	res := checker.Check(src, checker.Options{
		AllowBareExpressions: cfg.Checker.AllowBareExpressions,
		AllowGlobals:         cfg.Checker.AllowGlobals,
	})

	fmt.Print(report.Render(res.Accepted, res.Diagnostics, report.Options{
		Color:     cfg.Output.Color && !noColor,
		LinesOnly: cfg.Output.LinesOnly || linesOnly,
	}))

	if !res.Accepted {
		os.Exit(1)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}

// readInput returns the contents of path, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
