package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer replaying the invocation's captured standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer replaying the invocation's captured error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Done marks the vertex as finished, recording err when the build failed.
func (v *Vertex) Done(err error) {
	v.vertex.Done(err)
}
