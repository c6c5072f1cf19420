package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio reads prompts from in and prints to out.
// One buffered reader is kept for all prompts so piped input is not lost between reads.
type Stdio struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// NewStdio uses the process stdin and stdout
func NewStdio() IO {
	return NewStdioWith(os.Stdin, os.Stdout)
}

// NewStdioWith uses the given streams
func NewStdioWith(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput prints prompt and reads one line. The last line may end without a newline.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword reads without echo when in is a terminal, otherwise reads a line
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	f, ok := s.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(int(f.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
