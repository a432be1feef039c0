package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// promptLine reads a single trimmed line from the shell's input
func (s *Shell) promptLine(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt reads a line and parses it as an integer
func (s *Shell) promptInt(label string) (int, error) {
	line, err := s.promptLine(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	return n, nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (piped input, tests)
func (s *Shell) promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if s.interactive && term.IsTerminal(fd) {
		fmt.Fprint(s.out, label)
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(s.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return s.promptLine(label)
}

// pressEnter pauses until the user hits Enter
func (s *Shell) pressEnter() {
	fmt.Fprint(s.out, "\nPress Enter to continue...")
	_, _ = s.in.ReadString('\n')
}
