package xio

import (
	"context"
	"errors"
	"io"

	"golang.org/x/time/rate"
)

// ErrSizeLimitExceeded is returned when a single Write is larger than the
// configured size limit.
var ErrSizeLimitExceeded = errors.New("write exceeds size limit")

// WriterDecorator is a type representing functions that can be used to add
// (to decorate writer with) functionality to the passed writer.
type WriterDecorator func(io.Writer) io.Writer

// WriterFunc type is an adapter to allow the use of ordinary functions as
// io.Writers. If f is a function with the appropriate signature, WriterFunc(f)
// is a Writer that calls f.
type WriterFunc func([]byte) (int, error)

func (w WriterFunc) Write(p []byte) (int, error) {
	return w(p)
}

// DecorateWriter returns writer, based on the passed one, decorated with passed
// decorators.
func DecorateWriter(writer io.Writer, decorators ...WriterDecorator) io.Writer {
	for _, decorator := range decorators {
		writer = decorator(writer)
	}
	return writer
}

// Throttle decorator delays Write calls so that no more than perSecond of them
// pass each second. A blocked Write returns the context error when ctx is done.
func Throttle(ctx context.Context, perSecond int) WriterDecorator {
	limiter := rate.NewLimiter(rate.Limit(perSecond), 1)
	return func(writer io.Writer) io.Writer {
		return WriterFunc(func(p []byte) (int, error) {
			if err := limiter.Wait(ctx); err != nil {
				return 0, err
			}
			return writer.Write(p)
		})
	}
}

// SizeLimit rejects, with ErrSizeLimitExceeded, every Write longer than max
// bytes. Nothing is written to the underlying writer in that case, so record
// writers emitting one Write per record drop whole records only.
func SizeLimit(max int) WriterDecorator {
	return func(writer io.Writer) io.Writer {
		return WriterFunc(func(p []byte) (int, error) {
			if len(p) > max {
				return 0, ErrSizeLimitExceeded
			}
			return writer.Write(p)
		})
	}
}
