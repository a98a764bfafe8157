package cms

import "github.com/linkbay/cms/internal/runtimeconfig"

var (
	ErrThemesFeatureRequired   = runtimeconfig.ErrThemesFeatureRequired
	ErrThemesBasePathRequired  = runtimeconfig.ErrThemesBasePathRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrTenantSuffixInvalid     = runtimeconfig.ErrTenantSuffixInvalid
	ErrStorageDialectUnknown   = runtimeconfig.ErrStorageDialectUnknown
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	TenancyConfig  = runtimeconfig.TenancyConfig
	ThemeConfig    = runtimeconfig.ThemeConfig
	Features       = runtimeconfig.Features
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
