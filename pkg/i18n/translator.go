package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync"
)

// Translator resolves translation keys to localized strings for every
// locale in a catalog. Message catalogs are loaded once at construction
// through a Loader and are immutable afterwards, making the translator safe
// for concurrent use.
type Translator struct {
	catalog       *Catalog
	messages      map[Code]Messages
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
}

// TranslatorOption configures a Translator instance.
type TranslatorOption func(*Translator)

// WithFallbackToKey determines whether a missing translation falls back to
// the key itself. Default is true.
func WithFallbackToKey(fallback bool) TranslatorOption {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithTranslatorLogger provides a logger for the translator. If not
// specified, a discard logger is used.
func WithTranslatorLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingLogging controls whether missing translations are logged.
// Default is false to avoid noisy request logs.
func WithMissingLogging(log bool) TranslatorOption {
	return func(t *Translator) {
		t.logMissing = log
	}
}

// NewTranslator loads the message catalog of every locale in the catalog and
// returns a translator over them. A locale whose resource cannot be loaded
// fails construction.
func NewTranslator(ctx context.Context, catalog *Catalog, loader Loader, opts ...TranslatorOption) (*Translator, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if loader == nil {
		return nil, fmt.Errorf("loader is nil")
	}

	t := &Translator{
		catalog:       catalog,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	messages := make(map[Code]Messages, len(catalog.Codes()))
	for _, code := range catalog.Codes() {
		msgs, err := loader.Load(ctx, code)
		if err != nil {
			return nil, errors.Join(ErrCatalogLoad, err)
		}
		messages[code] = msgs
	}
	t.messages = messages

	t.logger.InfoContext(ctx, "message catalogs loaded", "locales", catalog.Codes())
	return t, nil
}

// SupportedLocales returns the codes the translator holds messages for, in
// catalog order.
func (t *Translator) SupportedLocales() []Code {
	return t.catalog.Codes()
}

// paramRegex finds named placeholders in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{key} placeholders in tmpl from args given as
// key, value, key, value pairs. Unknown placeholders stay untouched; an odd
// trailing argument is ignored.
func namedSprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for the given locale, substituting %{name} placeholders
// from args provided as key-value pairs:
//
//	translator.T("en", "welcome", "name", "John")
//
// When the locale or key is unknown and fallback-to-key is enabled (the
// default), the key itself is returned with placeholders substituted.
func (t *Translator) T(code Code, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msgs, ok := t.messages[code]
	if !ok {
		if t.logMissing {
			t.logger.Warn("locale not loaded", "locale", string(code), "key", key)
		}
		return t.fallback(key, args)
	}

	tmpl, ok := msgs[key]
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", "locale", string(code), "key", key)
		}
		return t.fallback(key, args)
	}
	return namedSprintf(tmpl, args)
}

// Tc translates key using the locale negotiated for the request context.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LocaleFromContext(ctx), key, args...)
}

// Td translates key with an explicit default used when the translation is
// missing, instead of falling back to the key itself.
func (t *Translator) Td(code Code, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if msgs, ok := t.messages[code]; ok {
		if tmpl, ok := msgs[key]; ok {
			return namedSprintf(tmpl, args)
		}
	}
	if t.logMissing {
		t.logger.Warn("translation not found", "locale", string(code), "key", key)
	}
	return namedSprintf(defaultValue, args)
}

// HasTranslation checks whether a translation exists for locale and key.
func (t *Translator) HasTranslation(code Code, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msgs, ok := t.messages[code]
	if !ok {
		return false
	}
	_, ok = msgs[key]
	return ok
}

// MissingKeys reports translation key-set drift between locales: for each
// locale, the keys present in at least one other locale but absent from it.
// Drift is worth flagging in CI, not worth failing a request over.
func (t *Translator) MissingKeys() map[Code][]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	union := make(Messages)
	for _, msgs := range t.messages {
		for k, v := range msgs {
			union[k] = v
		}
	}

	report := make(map[Code][]string)
	for code, msgs := range t.messages {
		if missing := msgs.MissingKeys(union); len(missing) > 0 {
			report[code] = missing
		}
	}
	return report
}

// ExportJSON returns the full message catalog of a locale as a JSON string,
// for handing translations to client-side code.
func (t *Translator) ExportJSON(code Code) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msgs, ok := t.messages[code]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownResource, code)
	}

	bytes, err := json.Marshal(msgs)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(bytes), nil
}

func (t *Translator) fallback(key string, args []string) string {
	if t.fallbackToKey {
		return namedSprintf(key, args)
	}
	return ""
}
