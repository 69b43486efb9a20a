package i18n

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Repository abstracts reading and writing the "current locale" concept away
// from the concrete routing machinery. Implementations are cheap per-request
// value objects, not singletons: rebuild one from the ambient request on
// every use so it can never go stale across navigations.
type Repository interface {
	// CurrentLocale returns the locale of the active request, degrading to
	// the catalog default when the routing context carries no supported
	// code. It never fails.
	CurrentLocale() Code

	// SetLocale rewrites the locale segment of the current path to target
	// and triggers navigation. It performs no validation; keeping unknown
	// codes out of here is the Switcher's job.
	SetLocale(target Code)

	// IsValidLocale reports whether candidate is a catalog-supported code.
	IsValidLocale(candidate string) bool
}

// Navigator performs the actual navigation to the given target path,
// typically an HTTP redirect that replaces the current location.
type Navigator func(target string)

// RouteRepository binds Repository to a concrete routing context: the raw
// locale candidate captured by the router, the current pathname and a
// navigation callback.
type RouteRepository struct {
	catalog   *Catalog
	candidate string
	path      string
	navigate  Navigator
}

// NewRouteRepository builds a repository from the three pieces of ambient
// routing context. candidate is the raw locale value the router captured
// (may be empty or unsupported), path is the current pathname and navigate
// receives the rewritten target path on SetLocale.
func NewRouteRepository(catalog *Catalog, candidate, path string, navigate Navigator) *RouteRepository {
	return &RouteRepository{
		catalog:   catalog,
		candidate: candidate,
		path:      path,
		navigate:  navigate,
	}
}

// NewRequestRepository builds a repository bound to an in-flight HTTP
// request. The locale candidate is read from the chi {locale} route
// parameter (falling back to the first path segment), and SetLocale issues
// a 303 See Other redirect so locale toggles replace the current history
// entry instead of stacking up.
func NewRequestRepository(catalog *Catalog, w http.ResponseWriter, r *http.Request) *RouteRepository {
	candidate := chi.URLParam(r, "locale")
	if candidate == "" {
		candidate = firstPathSegment(r.URL.Path)
	}
	return NewRouteRepository(catalog, candidate, r.URL.Path, func(target string) {
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
}

// CurrentLocale implements Repository.
func (r *RouteRepository) CurrentLocale() Code {
	return r.catalog.Resolve(r.candidate)
}

// SetLocale implements Repository.
func (r *RouteRepository) SetLocale(target Code) {
	if r.navigate == nil {
		return
	}
	r.navigate(r.LocalizedPath(target))
}

// IsValidLocale implements Repository.
func (r *RouteRepository) IsValidLocale(candidate string) bool {
	return r.catalog.IsSupported(candidate)
}

// LocalizedPath returns the current pathname with its locale segment
// replaced by target. All other segments are preserved verbatim. When the
// path carries no locale segment, target is prepended.
func (r *RouteRepository) LocalizedPath(target Code) string {
	segments := strings.Split(strings.TrimPrefix(r.path, "/"), "/")
	if len(segments) > 0 && r.catalog.IsSupported(segments[0]) {
		segments[0] = string(target)
	} else if len(segments) == 1 && segments[0] == "" {
		segments[0] = string(target)
	} else {
		segments = append([]string{string(target)}, segments...)
	}
	return "/" + strings.Join(segments, "/")
}

// firstPathSegment returns the first non-empty segment of path, or "".
func firstPathSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}
