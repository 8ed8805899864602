package icondemo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints human-readable progress lines for a Generator run. Colors
// are only emitted when the writer is a terminal.
type Reporter struct {
	w io.Writer

	title   lipgloss.Style
	path    lipgloss.Style
	created lipgloss.Style
	failed  lipgloss.Style
	done    lipgloss.Style
}

// NewReporter builds a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:       w,
		title:   r.NewStyle().Bold(true),
		path:    r.NewStyle().Faint(true),
		created: r.NewStyle().Foreground(lipgloss.Color("2")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		done:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

func (r *Reporter) Started(sourceDir, outputDir string) {
	fmt.Fprintln(r.w, r.title.Render("Generating demo icons"))
	fmt.Fprintf(r.w, "Source: %s\n", r.path.Render(sourceDir))
	fmt.Fprintf(r.w, "Output: %s\n", r.path.Render(outputDir))
}

func (r *Reporter) Created(name string) {
	fmt.Fprintf(r.w, "%s %s\n", r.created.Render("Created:"), name)
}

func (r *Reporter) Failed(err *FileError) {
	fmt.Fprintf(r.w, "%s %s\n", r.failed.Render("Error:"), err.Error())
}

// Finished prints the trailer. It is printed even when files failed; the
// tally tells the two cases apart.
func (r *Reporter) Finished(summary Summary) {
	line := fmt.Sprintf("Demo icons generated successfully (%d created, %d failed)",
		len(summary.Created), len(summary.Failed))
	fmt.Fprintln(r.w, r.done.Render(line))
}
