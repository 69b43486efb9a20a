package i18n

import (
	"context"
)

// LocaleContext is the per-request outcome of negotiation: the resolved
// locale and its loaded message catalog. A fresh value is created for every
// request and is never shared across requests.
type LocaleContext struct {
	Locale   Locale
	Messages Messages
}

// localeContextKey is the key for storing the negotiated locale in context.
type localeContextKey struct{}

// WithLocaleContext stores the negotiated locale context in ctx.
func WithLocaleContext(ctx context.Context, lctx *LocaleContext) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lctx)
}

// FromContext returns the negotiated locale context for the current request.
func FromContext(ctx context.Context) (*LocaleContext, bool) {
	lctx, ok := ctx.Value(localeContextKey{}).(*LocaleContext)
	return lctx, ok && lctx != nil
}

// LocaleFromContext returns the resolved locale code for the current request.
// If negotiation has not run for this context, the default catalog's default
// code is returned so callers always get a usable value.
func LocaleFromContext(ctx context.Context) Code {
	if lctx, ok := FromContext(ctx); ok {
		return lctx.Locale.Code
	}
	return defaultCatalog.Default()
}
