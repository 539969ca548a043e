package ports

import "io"

// Telemetry records build progress as vertexes on a progress tape.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new vertex with the given display name and content
	// digest (the invocation fingerprint).
	Record(name, digest string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded build invocation.
type Vertex interface {
	// Stdout returns a writer for the invocation's captured standard output.
	Stdout() io.Writer
	// Stderr returns a writer for the invocation's captured error output.
	Stderr() io.Writer
	// Done marks the vertex as finished, with err nil on success.
	Done(err error)
}
