package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	urlkit "github.com/goliatone/go-urlkit"
)

var ErrContentDirRequired = errors.New("docrepo config: content directory is required")
var ErrReadingTimeInvalid = errors.New("docrepo config: reading time words-per-minute must be positive")
var ErrLoggingProviderRequired = errors.New("docrepo config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("docrepo config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("docrepo config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docrepo config: logging format is invalid")

// Config aggregates filesystem, parser, cache and navigation bindings for the
// content repository. Fields intentionally use simple types so host
// applications can unmarshal them from their own configuration formats.
type Config struct {
	// ContentDir is the root directory holding the Markdown tree.
	ContentDir string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern    string
	Exclude    ExcludeConfig
	Cache      CacheConfig
	Reading    ReadingConfig
	Parser     ParserConfig
	Logging    LoggingConfig
	Navigation NavigationConfig
}

// ExcludeConfig lists files the catalog must never surface as content.
type ExcludeConfig struct {
	// Basenames are matched case-insensitively against the file name.
	Basenames []string
	// Prefixes are matched case-insensitively against the start of the file name.
	Prefixes []string
}

// CacheConfig toggles the process-lifetime index cache. When disabled, every
// call re-walks the filesystem: always-fresh results traded for latency.
// The two modes are never mixed within one process.
type CacheConfig struct {
	Enabled bool
}

// ReadingConfig controls the reading-time estimate attached to summaries.
type ReadingConfig struct {
	WordsPerMinute int
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Enabled   bool
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// NavigationConfig declares the static site map and how item hrefs resolve.
// When RouteConfig is set, item hrefs are built through go-urlkit using
// Group/Route with the document slug bound to SlugParam; otherwise items
// fall back to their literal Href (or "/" + slug).
type NavigationConfig struct {
	RouteConfig *urlkit.Config
	Group       string
	Route       string
	SlugParam   string
	Groups      []NavGroupConfig
}

// NavGroupConfig describes one navigation group in the static site map.
type NavGroupConfig struct {
	Title string
	Items []NavItemConfig
}

// NavItemConfig describes a single navigation entry. Either Slug or Href
// must be present; Label falls back to a humanized slug segment.
type NavItemConfig struct {
	Label string
	Slug  string
	Href  string
	Icon  string
}

// Validate ensures a navigation item can produce a link.
func (item NavItemConfig) Validate() error {
	return validation.ValidateStruct(&item,
		validation.Field(&item.Slug, validation.Required.When(strings.TrimSpace(item.Href) == "").
			Error("navigation item requires a slug or an href")),
	)
}

// DefaultConfig returns opinionated defaults for a docs-style content tree.
func DefaultConfig() Config {
	return Config{
		ContentDir: "content",
		Pattern:    "*.md",
		Exclude: ExcludeConfig{
			Basenames: []string{"readme.md", "overview.md", "documentation-index.md"},
			Prefixes:  []string{"diagram-"},
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Reading: ReadingConfig{
			WordsPerMinute: 225,
		},
		Parser: ParserConfig{},
		Logging: LoggingConfig{
			Enabled:  true,
			Provider: "console",
			Level:    "info",
		},
		Navigation: NavigationConfig{
			SlugParam: "slug",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Reading.WordsPerMinute < 0 {
		return ErrReadingTimeInvalid
	}
	if cfg.Logging.Enabled {
		provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
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
	for _, group := range cfg.Navigation.Groups {
		for _, item := range group.Items {
			if err := item.Validate(); err != nil {
				return fmt.Errorf("docrepo config: navigation group %q: %w", group.Title, err)
			}
		}
	}
	return nil
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
