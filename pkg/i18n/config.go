package i18n

import (
	"fmt"
)

// Config holds locale subsystem configuration sourced from the environment.
type Config struct {
	// Default is the fallback locale code.
	Default string `env:"LOCALE_DEFAULT" envDefault:"en"`
	// Supported lists the enabled locale codes, comma separated.
	Supported []string `env:"LOCALE_SUPPORTED" envDefault:"en,th"`
	// MessagesDir is the directory holding per-locale resource files.
	MessagesDir string `env:"LOCALE_MESSAGES_DIR" envDefault:"translations"`
	// CookieName is the cookie that persists an explicit locale choice.
	CookieName string `env:"LOCALE_COOKIE_NAME" envDefault:"locale"`
	// CacheSize bounds the number of message catalogs kept by CachedLoader.
	CacheSize int `env:"LOCALE_CACHE_SIZE" envDefault:"16"`
}

// builtinLocales maps known codes to their display metadata. Codes outside
// this table need explicit Locale definitions via NewCatalog.
var builtinLocales = map[Code]Locale{
	English.Code: English,
	Thai.Code:    Thai,
}

// CatalogFromConfig assembles a catalog from configured locale codes using
// the built-in metadata table. Codes without built-in metadata return
// ErrInvalidCatalog.
func CatalogFromConfig(cfg Config) (*Catalog, error) {
	locales := make([]Locale, 0, len(cfg.Supported))
	for _, code := range cfg.Supported {
		locale, ok := builtinLocales[Code(code)]
		if !ok {
			return nil, fmt.Errorf("%w: no metadata for locale %q, define it via NewCatalog", ErrInvalidCatalog, code)
		}
		locales = append(locales, locale)
	}
	return NewCatalog(Code(cfg.Default), locales...)
}
