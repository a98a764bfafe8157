package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrThemesFeatureRequired = errors.New("linkbay config: themes feature must be enabled to configure a default theme")
var ErrThemesBasePathRequired = errors.New("linkbay config: themes base path is required when themes are enabled")
var ErrLoggingProviderRequired = errors.New("linkbay config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("linkbay config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("linkbay config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("linkbay config: logging format is invalid")
var ErrTenantSuffixInvalid = errors.New("linkbay config: tenant local suffix must start with a dot")
var ErrStorageDialectUnknown = errors.New("linkbay config: storage dialect is invalid")

// Config aggregates feature flags and adapter bindings for the platform
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled         bool
	DefaultLanguage string
	Storage         StorageConfig
	Tenancy         TenancyConfig
	Themes          ThemeConfig
	Features        Features
	Commands        CommandsConfig
	Logging         LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies. Dialect
// picks the SQL dialect when an application database is bound; sqlite is
// assumed when empty.
type StorageConfig struct {
	Provider string
	Dialect  string
}

// TenancyConfig captures host parsing behaviour for tenant resolution.
type TenancyConfig struct {
	LocalSuffix string
}

// ThemeConfig captures configuration for the theme module.
type ThemeConfig struct {
	BasePath     string
	DefaultTheme string
}

// Features toggles module functionality.
type Features struct {
	Themes     bool
	Navigation bool
	Commands   bool
	Logger     bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLanguage: "en",
		Storage: StorageConfig{
			Provider: "bun",
			Dialect:  "sqlite",
		},
		Tenancy: TenancyConfig{
			LocalSuffix: ".local",
		},
		Themes: ThemeConfig{
			BasePath: "themes",
		},
		Features: Features{
			Themes:     true,
			Navigation: true,
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if !cfg.Features.Themes {
		if strings.TrimSpace(cfg.Themes.DefaultTheme) != "" {
			return ErrThemesFeatureRequired
		}
	}
	if cfg.Features.Themes && strings.TrimSpace(cfg.Themes.BasePath) == "" {
		return ErrThemesBasePathRequired
	}
	if suffix := strings.TrimSpace(cfg.Tenancy.LocalSuffix); suffix != "" && !strings.HasPrefix(suffix, ".") {
		return ErrTenantSuffixInvalid
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Dialect)) {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: %s", ErrStorageDialectUnknown, cfg.Storage.Dialect)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
