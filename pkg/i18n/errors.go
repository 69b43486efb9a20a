package i18n

import (
	"errors"
	"fmt"
)

// Package errors use descriptive messages for debugging without leaking
// implementation details. Context cancellation is kept separate from parse
// failures so callers can distinguish timeouts from bad resources.
var (
	// Catalog construction
	ErrEmptyCatalog   = errors.New("locale catalog has no entries")
	ErrInvalidCatalog = errors.New("invalid locale catalog")

	// Message catalog loading
	ErrCatalogLoad      = errors.New("failed to load message catalog")
	ErrUnknownResource  = errors.New("no message resource for locale")
	ErrLoadCancelled    = errors.New("message catalog load cancelled")
	ErrFailedToReadFile = errors.New("failed to read message resource")

	// Parsing
	ErrParsingCancelled  = errors.New("message resource parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON message resource")
	ErrFailedToParseYAML = errors.New("failed to parse YAML message resource")

	// JSON export
	ErrFailedToMarshalJSON = errors.New("failed to marshal messages to JSON")
)

// InvalidLocaleError indicates that a locale switch was requested for a code
// that is not in the catalog. The switch produces no navigation side effect.
type InvalidLocaleError struct {
	Locale string
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("locale not supported: %s", e.Locale)
}
