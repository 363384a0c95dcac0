// Package output renders the end-of-run summary: failed dots with the phase
// that broke them, then succeeded dots. Styling adapts to the terminal and
// shuts off entirely when output is piped.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotup-sh/dotup/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Summary headers
const (
	failedHeader    = "The following applications failed to install or setup:"
	succeededHeader = "The following applications succeeded setup:"
	nothingToDo     = "Nothing to set up."
)

// Styles used by the summary
var (
	failedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"})

	succeededStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"})

	reasonStyle = lipgloss.NewStyle().
			Faint(true)
)

// Renderer writes run summaries to a writer
type Renderer struct {
	w       io.Writer
	noColor bool
}

// NewRenderer creates a renderer for the given writer. Color is disabled
// when forceNoColor is set, the writer is not a terminal, or the terminal
// profile supports no color.
func NewRenderer(w io.Writer, forceNoColor bool) *Renderer {
	return &Renderer{
		w:       w,
		noColor: forceNoColor || !shouldColor(w),
	}
}

func shouldColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// RenderSummary prints the failed and succeeded lists. Sections with no
// entries are omitted; a run that classified nothing prints a single note.
func (r *Renderer) RenderSummary(results types.Results) {
	if len(results.Failed) == 0 && len(results.Succeeded) == 0 {
		fmt.Fprintln(r.w, nothingToDo)
		return
	}

	if len(results.Failed) > 0 {
		fmt.Fprintln(r.w, r.styled(failedStyle, failedHeader))
		for _, outcome := range results.Failed {
			line := outcome.Dot.Name
			if outcome.Reason != types.ReasonNone {
				line += " " + r.styled(reasonStyle, fmt.Sprintf("(%s)", outcome.Reason))
			}
			fmt.Fprintln(r.w, line)
		}
	}

	if len(results.Succeeded) > 0 {
		fmt.Fprintln(r.w, r.styled(succeededStyle, succeededHeader))
		for _, outcome := range results.Succeeded {
			fmt.Fprintln(r.w, outcome.Dot.Name)
		}
	}
}

func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if r.noColor {
		return s
	}
	return style.Render(s)
}
