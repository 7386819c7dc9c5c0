package logging

import (
	"context"
	"strings"

	"github.com/veloura/go-storefront/pkg/interfaces"
)

const (
	rootModule     = "storefront"
	storeModule    = "storefront.store"
	seederModule   = "storefront.seeder"
	readerModule   = "storefront.reader"
	resolverModule = "storefront.resolver"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	module = strings.TrimSpace(module)
	if module == "" {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// StoreLogger returns the logger namespace reserved for store backends.
func StoreLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storeModule)
}

// SeederLogger returns the logger namespace reserved for the content seeder.
func SeederLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, seederModule)
}

// ReaderLogger returns the logger namespace reserved for the reading facade.
func ReaderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, readerModule)
}

// ResolverLogger returns the logger namespace reserved for content resolution.
func ResolverLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, resolverModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
