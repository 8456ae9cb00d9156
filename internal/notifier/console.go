package notifier

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ConsoleNotifier writes reports to a terminal or any other writer.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier creates a notifier writing to out, or stdout when out is nil.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleNotifier{Out: out}
}

// Send writes text followed by a single newline.
func (c *ConsoleNotifier) Send(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(c.Out, text); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
