// Package prompt reads interactive answers from the user.
//
// Reading goes through the InputSource interface so the CLI can be driven by
// a terminal in production and by a fixed string in tests or when the answer
// is passed on the command line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// VersionQuestion is shown before reading the increment kind.
const VersionQuestion = "Which version do you want to update (patch/minor/major)? "

// InputSource yields one line of user input per call.
type InputSource interface {
	ReadLine() (string, error)
}

// LineReader reads newline-terminated lines from an io.Reader such as os.Stdin.
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader returns a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine blocks until a full line is available. It returns io.EOF once the
// underlying reader is exhausted. A final line without a trailing newline is
// still returned.
func (l *LineReader) ReadLine() (string, error) {
	if l.scanner.Scan() {
		return l.scanner.Text(), nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// StaticInput answers every ReadLine with the same string.
type StaticInput string

// ReadLine returns s.
func (s StaticInput) ReadLine() (string, error) {
	return string(s), nil
}

// Ask writes question to out, reads a single line from src and returns it with
// surrounding whitespace trimmed. A closed input stream counts as an empty answer.
func Ask(out io.Writer, src InputSource, question string) (string, error) {
	if _, err := io.WriteString(out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := src.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Keep the next output off the prompt line
			fmt.Fprintln(out)
			return "", nil
		}
		return "", fmt.Errorf("read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}
