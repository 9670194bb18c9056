package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console wraps line-oriented terminal I/O for the menu flows.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Prompt prints the label and returns the next input line, trimmed.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptFloat reads a number; ok reports whether the input parsed.
// err is set only when the input stream itself fails.
func (c *Console) PromptFloat(label string) (v float64, ok bool, err error) {
	s, err := c.Prompt(label)
	if err != nil {
		return 0, false, err
	}
	v, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return 0, false, nil
	}
	return v, true, nil
}
