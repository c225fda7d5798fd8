// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/quadeq/quadratic"
)

// DefaultMaxLineLength is the longest accepted line in bytes, not counting
// the line terminator.
const DefaultMaxLineLength = 1000

const panicMaxLineInvalid = "input: WithMaxLineLength: n must be >= 1"

// Option configures a Reader.
type Option func(*Reader)

// WithMaxLineLength sets the line limit. Panics when n < 1.
func WithMaxLineLength(n int) Option {
	if n < 1 {
		panic(panicMaxLineInvalid)
	}

	return func(r *Reader) { r.maxLine = n }
}

// Reader reads coefficient lines from a stream. It is not safe for
// concurrent use.
type Reader struct {
	br      *bufio.Reader
	maxLine int
}

// NewReader wraps src.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{maxLine: DefaultMaxLineLength}
	for _, opt := range opts {
		opt(r)
	}
	// Room for the longest line plus "\r\n".
	r.br = bufio.NewReaderSize(src, r.maxLine+2)

	return r
}

// MaxLineLength returns the line limit in bytes.
func (r *Reader) MaxLineLength() int { return r.maxLine }

// ReadLine returns the next line without its terminator, or io.EOF at end
// of input. An over-long line is consumed entirely and reported as
// ErrLineTooLong; the following call continues with the next line.
func (r *Reader) ReadLine() (string, error) {
	line, isPrefix, err := r.br.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix && len(line) <= r.maxLine {
		return string(line), nil
	}

	n := len(line)
	for isPrefix {
		line, isPrefix, err = r.br.ReadLine()
		n += len(line)
		if err != nil {
			break
		}
	}

	return "", errors.Wrapf(ErrLineTooLong, "%d bytes, limit %d", n, r.maxLine)
}

// Next reads one line and parses it. Parse errors are returned as-is;
// io.EOF is returned unwrapped.
func (r *Reader) Next() (quadratic.Coefficients, error) {
	line, err := r.ReadLine()
	if err != nil {
		return quadratic.Coefficients{}, err
	}

	return Parse(line)
}

// Prompt reads lines until one parses. Each rejected line is passed to
// onInvalid (which may be nil) before the next attempt.
//
// It stops with an error wrapping io.EOF when input ends, or wrapping
// ctx.Err() when ctx is cancelled. ctx is checked between lines; a read
// blocked on the underlying stream is not interrupted.
func (r *Reader) Prompt(ctx context.Context, onInvalid func(error)) (quadratic.Coefficients, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return quadratic.Coefficients{}, errors.Wrap(err, "prompt cancelled")
		}

		c, err := r.Next()
		switch {
		case err == nil:
			return c, nil
		case errors.Is(err, io.EOF):
			return quadratic.Coefficients{}, errors.Wrapf(err, "no valid coefficients after %d attempt(s)", attempt-1)
		case onInvalid != nil:
			onInvalid(err)
		}
	}
}
