package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// Module namespaces used across the repository runtime.
const (
	RootModule    = "docrepo"
	CatalogModule = "docrepo.catalog"
	IndexModule   = "docrepo.index"
	QueryModule   = "docrepo.query"
	NavModule     = "docrepo.nav"
)

type noopLogger struct{}

func (noopLogger) Trace(string, ...any)                            {}
func (noopLogger) Debug(string, ...any)                            {}
func (noopLogger) Info(string, ...any)                             {}
func (noopLogger) Warn(string, ...any)                             {}
func (noopLogger) Error(string, ...any)                            {}
func (noopLogger) Fatal(string, ...any)                            {}
func (l noopLogger) WithContext(context.Context) interfaces.Logger { return l }

// NoOp returns a logger that discards every entry. Used as the default when
// no provider is configured so callers never nil-check loggers.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Callers can pass nil or an
// empty map to skip allocation safely.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = RootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}
