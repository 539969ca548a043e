package ports

// ManifestReader queries a project's cargo manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Features returns the names declared in the manifest's [features] table,
	// in declaration order. An absent table yields an empty result, not an
	// error. The manifest is re-read on every call.
	Features(path string) ([]string, error)
}
