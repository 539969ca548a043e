package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Invocation is one fully assembled driver command, ready to execute.
type Invocation struct {
	// Path is the resolved driver binary.
	Path string

	// Args are the driver arguments, starting with the action (e.g. "build").
	Args []string

	// Env holds variables set on the child process in addition to the
	// inherited environment.
	Env map[string]string

	// Dir is the working directory for the child process.
	Dir string
}

// Fingerprint computes a stable xxhash digest of the invocation: driver path,
// argument vector, child environment overrides, and working directory.
func (inv *Invocation) Fingerprint() string {
	h := xxhash.New()

	_, _ = h.WriteString(inv.Path)
	_, _ = h.Write([]byte{0})

	for _, arg := range inv.Args {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})

	// Sort env keys for determinism
	keys := make([]string, 0, len(inv.Env))
	for k := range inv.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{'='})
		_, _ = h.WriteString(inv.Env[k])
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})

	_, _ = h.WriteString(inv.Dir)

	return fmt.Sprintf("%016x", h.Sum64())
}

// ExecResult is the outcome of one synchronous driver run.
type ExecResult struct {
	// Stdout and Stderr hold the fully captured output streams.
	Stdout []byte
	Stderr []byte

	// ExitCode is the child's exit code. 0 means success.
	ExitCode int

	// Status is the human-readable exit status description
	// (e.g. "exit status 101").
	Status string
}

// Success reports whether the child process exited cleanly.
func (r *ExecResult) Success() bool {
	return r.ExitCode == 0
}
