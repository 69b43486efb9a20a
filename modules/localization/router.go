// Package localization exposes the locale subsystem over HTTP: a locale
// list for picker UIs, a message-catalog export for client-side rendering,
// and a switch endpoint that validates the requested locale before
// navigating back to the localized page.
package localization

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localekit/pkg/cookie"
	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/requestid"
)

const (
	defaultCookieName   = "locale"
	defaultCookieMaxAge = 365 * 24 * 3600
)

// RouterOptions configures the localization module router.
type RouterOptions struct {
	// Catalog is the authoritative locale list. Required.
	Catalog *i18n.Catalog
	// Translator serves the message-catalog export. Required.
	Translator *i18n.Translator
	// Cookies persists an explicit locale choice across navigations.
	// Optional; without it the choice lives only in the URL.
	Cookies *cookie.Manager
	// CookieName overrides the locale cookie name. Default "locale".
	CookieName string
	// CookieMaxAge overrides the locale cookie lifetime in seconds.
	// Default one year.
	CookieMaxAge int
	// Logger receives switch diagnostics. Optional.
	Logger *slog.Logger
}

// Router creates the localization module router.
//
// Routes:
//
//	GET  /          locale list with current selection marked
//	GET  /messages  message catalog of the current locale as JSON
//	POST /{locale}  switch locale, 303 back to the localized referer
//
// Mount it wherever the application keeps utility endpoints:
//
//	r.Mount("/locale", localization.Router(localization.RouterOptions{
//		Catalog:    catalog,
//		Translator: translator,
//		Cookies:    cookieManager,
//	}))
func Router(opts RouterOptions) chi.Router {
	if opts.Catalog == nil {
		panic("localization: RouterOptions.Catalog is required")
	}
	if opts.Translator == nil {
		panic("localization: RouterOptions.Translator is required")
	}
	if opts.CookieName == "" {
		opts.CookieName = defaultCookieName
	}
	if opts.CookieMaxAge <= 0 {
		opts.CookieMaxAge = defaultCookieMaxAge
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := &handlers{opts: opts}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/", h.listLocales)
	r.Get("/messages", h.exportMessages)
	r.Post("/{locale}", h.switchLocale)
	return r
}
