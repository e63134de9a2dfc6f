package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdio reads lines from in and writes to out.
// One buffered reader is kept for the whole session so that
// consecutive ReadInput calls do not lose buffered input.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio returns IO over os.Stdin and os.Stdout
func NewStdio() IO {
	return New(os.Stdin, os.Stdout)
}

// New returns IO over the given reader and writer
func New(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

// ReadInput печатает prompt и читает одну строку без пробелов по краям.
// Последняя строка без перевода строки тоже возвращается; io.EOF только при пустом вводе.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}
