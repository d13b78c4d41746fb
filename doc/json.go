package doc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WithExtension replaces any extension on path with ext (given with
// its leading dot). The persistence layer owns extension
// normalization; callers pass a base path.
func WithExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Save writes the document as pretty-printed JSON to path, replacing
// any extension with ".json". Optional paragraph overrides are omitted
// when unset, and the set-vs-unset distinction survives a round trip
// through Read.
func (d *Document) Save(path string) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding document: %v", ErrSerialization, err)
	}
	if err := os.WriteFile(WithExtension(path, ".json"), b, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	return nil
}

// Read loads a document previously written by Save. The ".json"
// extension is appended to path the same way Save appends it.
func Read(path string) (*Document, error) {
	b, err := os.ReadFile(WithExtension(path, ".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("%w: decoding document: %v", ErrSerialization, err)
	}
	return &d, nil
}
