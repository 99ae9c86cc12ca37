package clstr

import (
	"bufio"
	"fmt"
	"io"
)

// A Writer emits clusters in .clstr format.
//
// Output is normalized: member indices are renumbered 0..N-1 by current list
// position and identities are written with exactly two decimal places, so a
// parse-then-write round trip reproduces the input byte-for-byte only up to
// those two rules.
type Writer struct {
	buf *bufio.Writer
}

// NewWriter returns a writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Write emits a single cluster: its header line followed by one line per
// member in list order.
func (w *Writer) Write(c *Cluster) error {
	if _, err := fmt.Fprintf(w.buf, ">Cluster %d\n", c.ID); err != nil {
		return err
	}
	for i, s := range c.Sequences {
		if _, err := fmt.Fprintf(w.buf, "%d    %daa, >%s...", i, s.Length, s.ID); err != nil {
			return err
		}
		if s.HasIdentity {
			if _, err := fmt.Fprintf(w.buf, " at %.2f%%", s.Identity); err != nil {
				return err
			}
		}
		if s.Representative {
			if _, err := w.buf.WriteString(" *"); err != nil {
				return err
			}
		}
		if err := w.buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
