package logging

import (
	"context"

	"github.com/linkbay/cms/pkg/interfaces"
)

const (
	rootModule       = "linkbay"
	shopsModule      = "linkbay.shops"
	pagesModule      = "linkbay.pages"
	addonsModule     = "linkbay.addons"
	themesModule     = "linkbay.themes"
	navigationModule = "linkbay.navigation"
	renderModule     = "linkbay.render"
	httpModule       = "linkbay.http"
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

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ShopsLogger returns the logger namespace reserved for tenant resolution.
func ShopsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, shopsModule)
}

// PagesLogger returns the logger namespace reserved for the page store.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// AddonsLogger returns the logger namespace reserved for the addon registry.
func AddonsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, addonsModule)
}

// ThemesLogger returns the logger namespace reserved for theme application.
func ThemesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, themesModule)
}

// NavigationLogger returns the logger namespace reserved for navbar services.
func NavigationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, navigationModule)
}

// RenderLogger returns the logger namespace reserved for the page composer.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP adapter.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
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
