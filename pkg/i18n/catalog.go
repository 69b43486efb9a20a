package i18n

import (
	"fmt"
)

// Code identifies a supported language variant, e.g. "en" or "th".
// Codes are matched by exact, case-sensitive string equality; no language-tag
// normalization is performed (see AcceptLanguageExtractor for the lenient
// matching extension point).
type Code string

// Direction is the text direction of a locale.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Locale is the immutable display metadata of a single supported language.
type Locale struct {
	Code       Code      `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"native_name"`
	Flag       string    `json:"flag"`
	Direction  Direction `json:"direction"`
}

// Built-in locale definitions. Applications with other languages construct
// their own entries and pass them to NewCatalog.
var (
	English = Locale{Code: "en", Name: "English", NativeName: "English", Flag: "🇬🇧", Direction: DirectionLTR}
	Thai    = Locale{Code: "th", Name: "Thai", NativeName: "ไทย", Flag: "🇹🇭", Direction: DirectionLTR}
)

// Catalog is the authoritative, ordered list of supported locales.
// It is constructed once, never mutated afterwards, and safe for concurrent
// use without synchronization.
type Catalog struct {
	defaultCode Code
	ordered     []Locale
	index       map[Code]Locale
}

// NewCatalog builds a catalog from the given locales preserving their order.
// It fails when no locales are provided, when a code appears twice, or when
// the default code is not among the entries.
func NewCatalog(defaultCode Code, locales ...Locale) (*Catalog, error) {
	if len(locales) == 0 {
		return nil, ErrEmptyCatalog
	}

	index := make(map[Code]Locale, len(locales))
	ordered := make([]Locale, 0, len(locales))
	for _, l := range locales {
		if l.Code == "" {
			return nil, fmt.Errorf("%w: empty locale code", ErrInvalidCatalog)
		}
		if _, exists := index[l.Code]; exists {
			return nil, fmt.Errorf("%w: duplicate locale %q", ErrInvalidCatalog, l.Code)
		}
		index[l.Code] = l
		ordered = append(ordered, l)
	}

	if _, ok := index[defaultCode]; !ok {
		return nil, fmt.Errorf("%w: default locale %q not in catalog", ErrInvalidCatalog, defaultCode)
	}

	return &Catalog{
		defaultCode: defaultCode,
		ordered:     ordered,
		index:       index,
	}, nil
}

// MustCatalog is like NewCatalog but panics on error. Intended for static
// catalog tables wired at process start.
func MustCatalog(defaultCode Code, locales ...Locale) *Catalog {
	c, err := NewCatalog(defaultCode, locales...)
	if err != nil {
		panic(fmt.Sprintf("i18n: invalid catalog: %v", err))
	}
	return c
}

var defaultCatalog = MustCatalog("en", English, Thai)

// DefaultCatalog returns the built-in catalog: English (default) and Thai.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Default returns the fallback locale code used when negotiation cannot
// honor the request input.
func (c *Catalog) Default() Code {
	return c.defaultCode
}

// Locales returns the supported locales in catalog order. The returned slice
// is a copy; callers may modify it freely.
func (c *Catalog) Locales() []Locale {
	out := make([]Locale, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Codes returns the supported locale codes in catalog order.
func (c *Catalog) Codes() []Code {
	out := make([]Code, len(c.ordered))
	for i, l := range c.ordered {
		out[i] = l.Code
	}
	return out
}

// IsSupported reports whether candidate exactly matches the code of one of
// the catalog entries. Matching is case-sensitive: "EN" is not "en".
func (c *Catalog) IsSupported(candidate string) bool {
	_, ok := c.index[Code(candidate)]
	return ok
}

// Get returns the locale entry for the given code.
func (c *Catalog) Get(code Code) (Locale, bool) {
	l, ok := c.index[code]
	return l, ok
}

// Resolve maps an arbitrary candidate string to a supported code, degrading
// to the catalog default when the candidate is empty or unsupported.
func (c *Catalog) Resolve(candidate string) Code {
	if c.IsSupported(candidate) {
		return Code(candidate)
	}
	return c.defaultCode
}
