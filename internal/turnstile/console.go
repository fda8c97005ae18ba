package turnstile

import (
	"fmt"
	"io"
	"os"

	"faregate/internal/card"
)

// ConsolePresenter renders notifications as plain text, one line per event.
// Errors go to a separate writer so they survive stdout redirection.
type ConsolePresenter struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsolePresenter renders to stdout and stderr.
func NewConsolePresenter() *ConsolePresenter {
	return &ConsolePresenter{out: os.Stdout, errOut: os.Stderr}
}

// NewConsolePresenterTo renders to the given writers.
func NewConsolePresenterTo(out, errOut io.Writer) *ConsolePresenter {
	return &ConsolePresenter{out: out, errOut: errOut}
}

func (p *ConsolePresenter) PassGranted(cardID string) {
	fmt.Fprintf(p.out, "PASS granted for card %s\n", cardID)
}

func (p *ConsolePresenter) PassDenied(cardID string, denial card.Denial) {
	fmt.Fprintf(p.out, "PASS denied for card %s: %s\n", cardID, denial.Reason())
}

func (p *ConsolePresenter) Statistics(summary string) {
	fmt.Fprintf(p.out, "\n%s", summary)
}

func (p *ConsolePresenter) Error(message string) {
	fmt.Fprintf(p.errOut, "ERROR: %s\n", message)
}

func (p *ConsolePresenter) Info(message string) {
	fmt.Fprintf(p.out, "INFO: %s\n", message)
}
