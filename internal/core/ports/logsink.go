package ports

// LogSink persists captured build output.
//
//go:generate go run go.uber.org/mock/mockgen -source=logsink.go -destination=mocks/mock_logsink.go -package=mocks
type LogSink interface {
	// Append opens the file at path for appending (creating it if absent) and
	// writes the stdout bytes followed by the stderr bytes. The file handle
	// is released before returning.
	Append(path string, stdout, stderr []byte) error
}
