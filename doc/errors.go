package doc

import "errors"

// Sentinel errors for the failure kinds surfaced by pdfdoc. Callers
// match them with errors.Is; sites wrap them with context via %w.
var (
	// ErrSerialization indicates a malformed or incompatible persisted
	// document structure.
	ErrSerialization = errors.New("pdfdoc: serialization failed")
	// ErrFile indicates a file-system create/open/read/write failure.
	ErrFile = errors.New("pdfdoc: file operation failed")
	// ErrFontLoad indicates a font resource could not be fetched from
	// the network or the cache.
	ErrFontLoad = errors.New("pdfdoc: font load failed")
	// ErrFontParse indicates font bytes did not decode to a usable face.
	ErrFontParse = errors.New("pdfdoc: font parse failed")
)
