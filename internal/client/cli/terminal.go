package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalUI renders the blocking alert and confirmation dialogs of the
// mobile app on a terminal. Alert returns once the user pressed Enter;
// Confirm defaults to "no" on anything but an explicit yes.
type TerminalUI struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalUI(in *bufio.Reader, out io.Writer) *TerminalUI {
	return &TerminalUI{in: in, out: out}
}

func (t *TerminalUI) Alert(title, message string) {
	fmt.Fprintf(t.out, "\n[%s] %s\n", title, message)
	fmt.Fprint(t.out, "Press Enter to continue...")
	_, _ = t.in.ReadString('\n')
}

func (t *TerminalUI) Confirm(title, message string) bool {
	fmt.Fprintf(t.out, "\n[%s] %s [y/N]: ", title, message)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
