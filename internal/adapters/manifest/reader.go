// Package manifest reads cargo manifests.
package manifest

import (
	"os"

	"github.com/BurntSushi/toml"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader on top of TOML manifests.
type Reader struct{}

// NewReader creates a new manifest Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Features returns the key names of the manifest's top-level [features]
// table, in declaration order. An absent table is not an error; the manifest
// is read from disk on every call so the result reflects its current state.
//
// Read failures surface the underlying fs error; malformed TOML surfaces a
// toml.ParseError, so callers can tell the two kinds apart with errors.As.
func (r *Reader) Features(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "manifest", path)
	}

	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "manifest", path)
	}

	// MetaData.Keys yields every defined key in file order. Feature names are
	// the immediate children of the top-level "features" table.
	var names []string
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "features" {
			names = append(names, key[1])
		}
	}
	return names, nil
}
