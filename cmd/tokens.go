package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toyc-lang/toyc/internal/checker/lexer"
)

// tokens: dump the lexer's view of a source file
var TokensCmd = &cobra.Command{
	Use:   "tokens <source>",
	Short: "Dump the token stream of a ToyC source file",
	Args:  cobra.ExactArgs(1),
	RunE:  tokensRun,
}

func tokensRun(cmd *cobra.Command, args []string) error {
	src, err := readInput(args[0])
	if err != nil {
		return err
	}

	lx := lexer.New(src)
	for _, tok := range lx.Tokenize() {
		fmt.Printf("%4d  %-10s %q\n", tok.Line, tok.Type, tok.Literal)
	}
	for _, d := range lx.Diagnostics() {
		fmt.Println(d)
	}
	return nil
}
