package docrepo

import "github.com/goliatone/go-docrepo/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrReadingTimeInvalid      = runtimeconfig.ErrReadingTimeInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	ExcludeConfig    = runtimeconfig.ExcludeConfig
	CacheConfig      = runtimeconfig.CacheConfig
	ReadingConfig    = runtimeconfig.ReadingConfig
	ParserConfig     = runtimeconfig.ParserConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
	NavigationConfig = runtimeconfig.NavigationConfig
	NavGroupConfig   = runtimeconfig.NavGroupConfig
	NavItemConfig    = runtimeconfig.NavItemConfig
)

// DefaultConfig returns opinionated defaults for a docs-style content tree.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
