// Package buildlog persists captured build output to append-mode log files.
package buildlog

import (
	"os"

	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LogSink = (*Sink)(nil)

// Sink implements ports.LogSink on the local filesystem.
type Sink struct{}

// NewSink creates a new log Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Append writes the captured stdout bytes followed by the stderr bytes to the
// file at path, opening it in append mode and creating it if absent. The file
// handle is held only for the duration of the call.
func (s *Sink) Append(path string, stdout, stderr []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // path is provided by the caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open build log"), "log", path)
	}

	if _, err := f.Write(stdout); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write build log"), "log", path)
	}
	if _, err := f.Write(stderr); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write build log"), "log", path)
	}

	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close build log"), "log", path)
	}
	return nil
}
