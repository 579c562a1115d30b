package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is the single line reader and printer shared by every prompt, so
// buffered input is never split between readers.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) Writer() io.Writer {
	return c.out
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned with a nil error, io.EOF is
// only reported when nothing was read.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}
