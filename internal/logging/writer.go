package logging

import (
	"io"

	"go.uber.org/multierr"
)

// fanOutWriter mirrors log output to every writer (rotated file and stdout).
// One failing writer does not stop the others, their errors are combined.
type fanOutWriter struct {
	writers []io.Writer
}

func newFanOutWriter(writers ...io.Writer) *fanOutWriter {
	return &fanOutWriter{
		writers: append([]io.Writer(nil), writers...),
	}
}

func (fw *fanOutWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range fw.writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		err = multierr.Append(err, werr)
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
