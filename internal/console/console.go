// internal/console/console.go
//
// Line-oriented console protocol shared by the three programs:
// print a prompt, block on one line of input, trim surrounding whitespace.
//
// End of input is reported as io.EOF so callers can end a session cleanly.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultPrompt is printed before each read unless a custom prompt is given.
const DefaultPrompt = "> "

// Console reads trimmed lines from in and writes messages to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New wraps in/out into a Console.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine prints DefaultPrompt and returns the next trimmed line.
func (c *Console) ReadLine() (string, error) {
	return c.Prompt(DefaultPrompt)
}

// Prompt prints prompt and returns the next trimmed line.
// A final line without a newline is still returned; io.EOF follows on the next call.
func (c *Console) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Println writes its operands followed by a newline.
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Printf writes a formatted message.
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
