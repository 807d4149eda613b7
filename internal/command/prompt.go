package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter is the blocking boundary between menu actions and the person at
// the terminal.
type Prompter interface {
	// Ask shows label and returns the next line of input. It returns io.EOF
	// when no more input is available.
	Ask(ctx context.Context, label string) (string, error)
	// Say shows a line of output.
	Say(text string)
}

// LinePrompter reads answers line by line from a reader. Lines have no
// length limit; a final line without a newline is still returned.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a prompter over in and out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, label)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *LinePrompter) Say(text string) {
	fmt.Fprintln(p.out, text)
}
