package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// Out is where status lines are printed.
var Out io.Writer = os.Stdout

func PrintHeader(msg string) {
	fmt.Fprintf(Out, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Out, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}

// Progress is a progress bar over a known number of inputs, drawn on stderr.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress creates a progress bar for total inputs.
func NewProgress(description string, total int) *Progress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar}
}

// Update sets the number of completed inputs. Its signature matches
// embedder.Options.Progress.
func (p *Progress) Update(done, total int) {
	p.bar.Set(done)
	if done == total {
		p.bar.Finish()
	}
}
