package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateDefaultThemeRequiresFeature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Themes = false
	cfg.Themes.DefaultTheme = "aurora"

	if err := cfg.Validate(); !errors.Is(err, ErrThemesFeatureRequired) {
		t.Fatalf("err = %v, want ErrThemesFeatureRequired", err)
	}
}

func TestValidateThemesNeedBasePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Themes.BasePath = "  "

	if err := cfg.Validate(); !errors.Is(err, ErrThemesBasePathRequired) {
		t.Fatalf("err = %v, want ErrThemesBasePathRequired", err)
	}
}

func TestValidateTenantSuffix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tenancy.LocalSuffix = "local"

	if err := cfg.Validate(); !errors.Is(err, ErrTenantSuffixInvalid) {
		t.Fatalf("err = %v, want ErrTenantSuffixInvalid", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("err = %v, want ErrLoggingProviderUnknown", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("err = %v, want ErrLoggingFormatInvalid", err)
	}

	cfg.Logging.Format = "json"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("err = %v, want ErrLoggingLevelInvalid", err)
	}

	cfg.Logging.Level = "debug"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid logging config rejected: %v", err)
	}
}

func TestValidateStorageDialect(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Dialect = "oracle"

	if err := cfg.Validate(); !errors.Is(err, ErrStorageDialectUnknown) {
		t.Fatalf("err = %v, want ErrStorageDialectUnknown", err)
	}

	for _, dialect := range []string{"", "sqlite", "postgres", "Postgres"} {
		cfg.Storage.Dialect = dialect
		if err := cfg.Validate(); err != nil {
			t.Fatalf("dialect %q rejected: %v", dialect, err)
		}
	}
}
