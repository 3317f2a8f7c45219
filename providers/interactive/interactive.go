// Package interactive is the password/interactive-input host
// collaborator of spec.md §6.1: a component that can prompt an
// operator on a real terminal without echoing the answer, conceptually
// sibling to internal/utils/term.go's colored Print* helpers but aimed
// at input rather than output. The core itself never imports this
// package or prompts anything — a host wires it in only for options
// whose value is meant to come from an interactive prompt rather than
// a switch, environment variable, or default.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// Prompter asks a yes/no/text/secret question of whoever is attached
// to in/out. The default Prompter wraps os.Stdin/os.Stdout; a test
// harness supplies its own in/out instead.
type Prompter struct {
	in  io.Reader
	out io.Writer
	fd  int // file descriptor backing `in`, used for no-echo reads
}

// NewPrompter builds a Prompter over os.Stdin/os.Stdout.
func NewPrompter() *Prompter {
	return &Prompter{in: os.Stdin, out: os.Stdout, fd: int(os.Stdin.Fd())}
}

// NewPrompterFor wraps arbitrary in/out, for tests. Secret() falls
// back to a plain (echoing) read when in is not a real terminal.
func NewPrompterFor(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, fd: -1}
}

// Text prompts for a single line of plain text, trimmed of its
// trailing newline.
func (p *Prompter) Text(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Secret prompts for a line without echoing it back, the way an SSH
// passphrase prompt behaves. If the input isn't backed by a real
// terminal (fd < 0, or terminal.IsTerminal reports false) it falls
// back to Text rather than failing, so tests and piped input still
// work.
func (p *Prompter) Secret(prompt string) (string, error) {
	if p.fd < 0 || !terminal.IsTerminal(p.fd) {
		return p.Text(prompt)
	}
	fmt.Fprint(p.out, prompt)
	raw, err := terminal.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Confirm prompts a yes/no question, defaulting to def when the
// operator answers with an empty line.
func (p *Prompter) Confirm(prompt string, def bool) (bool, error) {
	suffix := " [y/N] "
	if def {
		suffix = " [Y/n] "
	}
	answer, err := p.Text(prompt + suffix)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	switch answer {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
