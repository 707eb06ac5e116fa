package tapevm

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource yields input one line at a time, without the line terminator. io.EOF marks the end.
type LineSource interface {
	ReadLine() (string, error)
}

type LineReader struct {
	r *bufio.Reader
}

var _ LineSource = new(LineReader)

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		r: bufio.NewReader(r),
	}
}

func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	// the last line may have no terminator
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

type LineSourceFunc func() (string, error)

var _ LineSource = LineSourceFunc(nil)

func (f LineSourceFunc) ReadLine() (string, error) {
	return f()
}
