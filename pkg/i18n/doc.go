// Package i18n implements locale resolution and switching for path-localized
// web applications, where the first URL path segment selects the language
// variant of the site (e.g. /en/dashboard, /th/dashboard).
//
// The package covers the full request lifecycle of a locale decision:
//
//   - A static, immutable Catalog describes the supported locales and their
//     display metadata (name, native name, flag, text direction).
//   - A Negotiator resolves the effective locale for an incoming request from
//     the URL path segment, falling back to the catalog default when the
//     segment is absent or unsupported, and loads the matching message
//     catalog through a pluggable Loader.
//   - A Repository abstracts "what is the current locale" and "navigate to a
//     new locale" away from the routing layer; RouteRepository binds it to
//     chi route parameters and an HTTP redirect.
//   - A Switcher validates a requested locale against the catalog before any
//     navigation side effect happens, rejecting unknown codes with a typed
//     InvalidLocaleError.
//   - A View bundles the current locale, the full locale list and a bound
//     switch function for the rendering layer.
//
// # Resolution flow
//
// Incoming request -> Middleware reads the {locale} path parameter ->
// Negotiator picks a supported locale (or the default) and loads its
// messages -> handlers read the decision via LocaleFromContext or
// FromContext -> a switch request goes through Switcher.Execute ->
// RouteRepository rewrites the locale segment of the current path and
// issues a replace-style redirect -> the new request re-enters negotiation.
//
// # Usage
//
//	catalog := i18n.DefaultCatalog()
//
//	loader := i18n.NewDirLoader(i18n.NewYAMLParser(), "./translations")
//	negotiator, err := i18n.NewNegotiator(catalog, loader)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Route("/{locale}", func(r chi.Router) {
//		r.Use(i18n.Middleware(negotiator))
//		r.Get("/dashboard", dashboardHandler)
//	})
//
// Inside a handler the resolved locale and messages are always available:
//
//	lctx, _ := i18n.FromContext(r.Context())
//	greeting := lctx.Messages["dashboard.greeting"]
//
// # Error Handling
//
// An absent or garbled locale segment is not an error: negotiation degrades
// to the catalog default. An explicit switch request to an unsupported code
// is an error: Switcher.Execute returns *InvalidLocaleError and no
// navigation happens. A failed message-catalog load is fatal for the
// request; it is reported wrapped in ErrCatalogLoad and never silently
// replaced with a partial or default catalog.
package i18n
