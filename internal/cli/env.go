package cli

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/regima/cycle-insights/internal/orgdata"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing commands in isolation:
// the clock, the logger, the environment, and the document source are all
// capabilities scoped to one invocation rather than process-wide state.
//
// All fields have sensible defaults via DefaultEnv(). Tests can override
// specific fields using the With* options or by creating a custom Env.
//
// Env must not be nil when passed to command functions. Use DefaultEnv()
// or NewEnv() to create a valid instance.
type Env struct {
	// I/O and environment
	Stderr io.Writer
	Getenv func(string) string
	Now    func() time.Time

	// Run-scoped capabilities
	Logger *zap.Logger
	RunID  func() string

	// Factories for domain objects
	Documents DocumentLoaderFactory
}

// DocumentLoader loads named configuration documents.
type DocumentLoader interface {
	Load(name string) (orgdata.Document, error)
}

// DocumentLoaderFactory creates document loaders bound to a base directory.
type DocumentLoaderFactory interface {
	NewLoader(base string, log *zap.Logger) DocumentLoader
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithNow sets the time provider.
func WithNow(fn func() time.Time) EnvOption {
	return func(e *Env) {
		e.Now = fn
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) EnvOption {
	return func(e *Env) {
		e.Logger = log
	}
}

// WithRunID sets the run identifier generator.
func WithRunID(fn func() string) EnvOption {
	return func(e *Env) {
		e.RunID = fn
	}
}

// WithDocumentLoaderFactory sets the document loader factory.
func WithDocumentLoaderFactory(f DocumentLoaderFactory) EnvOption {
	return func(e *Env) {
		e.Documents = f
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stderr:    os.Stderr,
		Getenv:    os.Getenv,
		Now:       time.Now,
		Logger:    zap.NewNop(),
		RunID:     uuid.NewString,
		Documents: &defaultLoaderFactory{},
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultLoaderFactory implements DocumentLoaderFactory using orgdata.
type defaultLoaderFactory struct{}

func (defaultLoaderFactory) NewLoader(base string, log *zap.Logger) DocumentLoader {
	return orgdata.NewLoader(base, log)
}

// Compile-time interface verification.
var _ DocumentLoaderFactory = (*defaultLoaderFactory)(nil)
