package storefront

import "github.com/veloura/go-storefront/internal/runtimeconfig"

var (
	ErrStoreProviderUnknown   = runtimeconfig.ErrStoreProviderUnknown
	ErrCMSBaseURLRequired     = runtimeconfig.ErrCMSBaseURLRequired
	ErrBunDSNRequired         = runtimeconfig.ErrBunDSNRequired
	ErrCMSTimeoutInvalid      = runtimeconfig.ErrCMSTimeoutInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrListLimitInvalid       = runtimeconfig.ErrListLimitInvalid
)

type (
	Config        = runtimeconfig.Config
	StoreConfig   = runtimeconfig.StoreConfig
	CMSConfig     = runtimeconfig.CMSConfig
	BunConfig     = runtimeconfig.BunConfig
	ReaderConfig  = runtimeconfig.ReaderConfig
	CacheConfig   = runtimeconfig.CacheConfig
	RoutesConfig  = runtimeconfig.RoutesConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns defaults suitable for local development.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv layers STOREFRONT_* environment variables over the defaults.
func ConfigFromEnv() (Config, error) {
	return runtimeconfig.FromEnv()
}
