package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestValidate_ContentDirRequired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentDir = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidate_ReadingTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Reading.WordsPerMinute = -1
	if err := cfg.Validate(); !errors.Is(err, ErrReadingTimeInvalid) {
		t.Fatalf("expected ErrReadingTimeInvalid, got %v", err)
	}
}

func TestValidate_Logging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Enabled = false
	cfg.Logging.Provider = "bogus"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled logging must skip provider checks, got %v", err)
	}
}

func TestValidate_NavigationItems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Navigation.Groups = []NavGroupConfig{
		{Title: "Guides", Items: []NavItemConfig{{Label: "Broken"}}},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("navigation item without slug or href must fail validation")
	}

	cfg.Navigation.Groups = []NavGroupConfig{
		{Title: "Guides", Items: []NavItemConfig{{Label: "Ok", Href: "/docs"}}},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("href-only item must validate, got %v", err)
	}
}
