// Package input reads answers typed at a console prompt.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// IOError reports a failure of one step of a prompted read.
type IOError struct {
	// Op is "write", "flush" or "read".
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("input: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Reader prints prompts to one stream and reads answers from another.
//
// The input side is buffered for the lifetime of the Reader, so bytes read
// past the end of one line are kept for the next call. A Reader does no
// locking: concurrent calls must be serialized by the caller.
type Reader struct {
	src io.Reader
	dst io.Writer

	r *bufio.Reader
	w *bufio.Writer
}

func NewReader(r io.Reader, w io.Writer) *Reader {
	return &Reader{
		src: r,
		dst: w,
		r:   bufio.NewReader(r),
		w:   bufio.NewWriter(w),
	}
}

// Input writes prompt as is, flushes it and blocks until one line can be
// read. The line is returned without its trailing "\r\n" or "\n".
//
// Hitting the end of the stream is not an error: whatever was read before it,
// possibly nothing, is returned. Any other failure is returned as an *IOError.
func (in *Reader) Input(prompt string) (string, error) {
	// A bufio.Writer keeps its first error, so drop it and the unwritten
	// prompt to let the next call reach dst again.
	if _, err := in.w.WriteString(prompt); err != nil {
		in.w.Reset(in.dst)
		return "", &IOError{Op: "write", Err: err}
	}

	if err := in.w.Flush(); err != nil {
		in.w.Reset(in.dst)
		return "", &IOError{Op: "flush", Err: err}
	}

	line, err := in.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &IOError{Op: "read", Err: err}
	}

	return TrimLineEnding(line), nil
}

// TrimLineEnding strips trailing carriage returns and newlines from s. Other
// trailing whitespace is kept.
func TrimLineEnding(s string) string {
	return strings.TrimRight(s, "\r\n")
}

var std *Reader

func stdReader() *Reader {
	if std == nil || std.src != io.Reader(os.Stdin) || std.dst != io.Writer(os.Stdout) {
		std = NewReader(os.Stdin, os.Stdout)
	}

	return std
}

// Input prompts on standard output and reads one line from standard input.
//
//	name, err := input.Input("Enter your name:")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Calls share one buffered reader over os.Stdin. A new one is made when
// os.Stdin or os.Stdout is replaced.
func Input(prompt string) (string, error) {
	return stdReader().Input(prompt)
}
