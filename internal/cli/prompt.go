package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Console is a line-based prompt capability handed to the run routine, so
// command logic can be exercised in tests without a real terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console reading prompts' answers from in and writing
// all user-facing output to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints prompt and returns the next input line, trimmed of
// surrounding whitespace.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Printf writes a formatted progress line to the console output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^a-z0-9_]`)
)

// NormalizeBaseName turns free text into a safe output-file base name:
// lowercased, whitespace runs collapsed to single underscores, and any
// character outside [a-z0-9_] stripped.
func NormalizeBaseName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRun.ReplaceAllString(s, "_")
	return invalidChars.ReplaceAllString(s, "")
}
