package checker

import (
	"os"

	"github.com/toyc-lang/toyc/internal/checker/diag"
	"github.com/toyc-lang/toyc/internal/checker/lexer"
	"github.com/toyc-lang/toyc/internal/checker/parser"
)

// Options hold the parser policy knobs, see parser.Options.
type Options struct {
	AllowBareExpressions bool
	AllowGlobals         bool
}

// Result is the outcome of one full pass over one source text.
type Result struct {
	Accepted    bool
	Diagnostics []diag.Diagnostic
}

// Check runs the tokenize-then-parse pipeline over src and merges the
// lexical and syntactic diagnostics into one line-sorted set, at most one
// entry per line.
func Check(src string, opts Options) Result {
	set := diag.NewSet()

	lx := lexer.New(src)
	tokens := lx.Tokenize()
	set.AddAll(lx.Diagnostics())

	// an unterminated block comment invalidates every token boundary
	// after it, so the truncated tail is not worth parsing
	if !lx.Truncated() {
		p := parser.New(tokens, parser.Options{
			AllowBareExpressions: opts.AllowBareExpressions,
			AllowGlobals:         opts.AllowGlobals,
		})
		p.Parse()
		set.AddAll(p.Diagnostics())
	}

	return Result{
		Accepted:    set.Empty(),
		Diagnostics: set.Sorted(),
	}
}

// CheckFile reads path and checks its contents. A read failure surfaces
// as an error before any tokenization happens.
func CheckFile(path string, opts Options) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Check(string(b), opts), nil
}
