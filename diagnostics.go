package ecs

import (
	"sync"

	"go.uber.org/zap"
)

// Diagnostics is the non-fatal reporting channel described by the runtime's
// error handling policy: accounting discrepancies (duplicate container
// registration, a stale modify index, and the like) are logged here and
// otherwise swallowed rather than surfaced as errors.
type Diagnostics interface {
	Warnf(format string, args ...any)
}

// zapDiagnostics adapts a *zap.Logger to Diagnostics.
type zapDiagnostics struct {
	log *zap.SugaredLogger
}

// NewZapDiagnostics wraps an existing zap logger for use as a container's
// diagnostic sink.
func NewZapDiagnostics(log *zap.Logger) Diagnostics {
	return &zapDiagnostics{log: log.Sugar()}
}

func (z *zapDiagnostics) Warnf(format string, args ...any) {
	z.log.Warnf(format, args...)
}

var (
	defaultDiagOnce sync.Once
	defaultDiag     Diagnostics
)

// defaultDiagnostics lazily builds a development-style zap logger the first
// time a ContainerMap or ComponentContainer is created, and returns that
// same shared sink on every later call.
func defaultDiagnostics() Diagnostics {
	defaultDiagOnce.Do(func() {
		log, err := zap.NewDevelopment()
		if err != nil {
			log = zap.NewNop()
		}
		defaultDiag = NewZapDiagnostics(log)
	})
	return defaultDiag
}

// noopDiagnostics discards every warning. Useful in tests that want to
// assert on behavior without zap's console noise.
type noopDiagnostics struct{}

func (noopDiagnostics) Warnf(string, ...any) {}

// NewNoopDiagnostics returns a Diagnostics sink that discards every warning.
func NewNoopDiagnostics() Diagnostics { return noopDiagnostics{} }
