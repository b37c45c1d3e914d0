package braces

import (
	"io"
	"iter"
	"os"
)

// Fprint formats args into format and writes the result to w. Nothing is
// written when formatting fails.
func Fprint(w io.Writer, format string, args ...any) (int, error) {
	b, err := FormatBuffer(nil, format, args...)
	if err != nil {
		return 0, err
	}
	defer b.Free()
	return w.Write(b.Bytes())
}

// Fprintln is [Fprint] followed by a newline.
func Fprintln(w io.Writer, format string, args ...any) (int, error) {
	b, err := FormatBuffer(nil, format, args...)
	if err != nil {
		return 0, err
	}
	defer b.Free()
	_ = b.WriteByte('\n')
	return w.Write(b.Bytes())
}

// Print writes to standard output.
func Print(format string, args ...any) (int, error) {
	return Fprint(os.Stdout, format, args...)
}

// Println writes a line to standard output.
func Println(format string, args ...any) (int, error) {
	return Fprintln(os.Stdout, format, args...)
}

// Eprint writes to standard error.
func Eprint(format string, args ...any) (int, error) {
	return Fprint(os.Stderr, format, args...)
}

// Eprintln writes a line to standard error.
func Eprintln(format string, args ...any) (int, error) {
	return Fprintln(os.Stderr, format, args...)
}

// FprintSeq formats each item from seq as the single argument of format and
// writes one line per item as it arrives. It stops at the first error.
func FprintSeq[T any](w io.Writer, format string, seq iter.Seq[T]) error {
	var err error
	seq(func(item T) bool {
		_, err = Fprintln(w, format, item)
		return err == nil
	})
	return err
}

// FprintChan formats items received from ch until it is closed.
// It is a thin wrapper around [FprintSeq].
func FprintChan[T any](w io.Writer, format string, ch <-chan T) error {
	return FprintSeq(w, format, chanToSeq(ch))
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
