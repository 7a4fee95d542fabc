package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/toyc-lang/toyc/internal/checker/diag"
)

var (
	acceptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true) // Emerald
	rejectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true) // Red
	lineRefStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))            // Gray
)

// Options control how a report is laid out.
type Options struct {
	// Color renders the verdict and line references with lipgloss styles.
	Color bool
	// LinesOnly reduces each diagnostic line to its bare line number.
	LinesOnly bool
}

// Render formats the verdict line ("accept" or "reject") followed by one
// entry per diagnostic, already sorted by ascending source line.
func Render(accepted bool, diags []diag.Diagnostic, opts Options) string {
	var b strings.Builder

	verdict, style := "accept", acceptStyle
	if !accepted {
		verdict, style = "reject", rejectStyle
	}
	if opts.Color {
		verdict = style.Render(verdict)
	}
	b.WriteString(verdict)
	b.WriteByte('\n')

	for _, d := range diags {
		if opts.LinesOnly {
			fmt.Fprintf(&b, "%d\n", d.Line)
			continue
		}
		ref := fmt.Sprintf("line %d:", d.Line)
		if opts.Color {
			ref = lineRefStyle.Render(ref)
		}
		fmt.Fprintf(&b, "%s %s\n", ref, d.Message)
	}

	return b.String()
}
