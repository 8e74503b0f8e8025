package orgdata

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Document names resolved against the loader's base directory.
// Use these instead of string literals for compile-time safety.
const (
	// DocPrimary holds the organizational consciousness and zone framework
	// data that drives context construction.
	DocPrimary = "regcyc.json"

	// DocCompletion holds cycle completion data. It is loaded for parity
	// with the primary document but nothing downstream consumes it yet.
	DocCompletion = "cycleCompletion.json"
)

// Loader reads configuration documents from a base directory.
type Loader struct {
	base string
	log  *zap.Logger
}

// NewLoader creates a loader resolving document names against base.
// A nil logger disables logging.
func NewLoader(base string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{base: base, log: log}
}

// Load reads and parses the named document.
// A missing file returns (Empty(), ErrNotFound); unparseable content returns
// (Empty(), ErrMalformed). The error is reported, never swallowed — the
// caller decides to proceed with the empty document.
func (l *Loader) Load(name string) (Document, error) {
	path := filepath.Join(l.base, name)

	// #nosec G304 -- path is constructed from the configured base directory
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), fmt.Errorf("%w: %s (looked in %s)", ErrNotFound, name, l.base)
		}
		return Empty(), fmt.Errorf("cannot read document %s: %w", name, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return Empty(), fmt.Errorf("document %s: %w", name, err)
	}

	l.log.Debug("document loaded",
		zap.String("name", name),
		zap.Int("bytes", len(data)))

	return doc, nil
}
