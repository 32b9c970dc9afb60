package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a write out to all of its writers. Used for teeing
// the service log to both the rotated file and stdout.
type CombinedWriter struct {
	Writers []io.Writer
	Err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: writers,
	}
}

// Write writes p to every writer. A failing writer does not stop the
// others; all errors are combined into one.
func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	n = 0
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
