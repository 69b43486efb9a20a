package i18n

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxLocaleCodeLength caps candidate length. RFC 5646 recommends 35
// characters max for a language tag; anything longer is garbage input.
const maxLocaleCodeLength = 35

// Extractor pulls a locale candidate string out of an HTTP request. An empty
// return means "no candidate here"; the negotiator then applies its default.
type Extractor func(r *http.Request) string

// PathExtractor extracts the locale candidate from the URL path: the chi
// {locale} route parameter when the router captured one, otherwise the first
// path segment. This is the canonical source for path-localized sites.
func PathExtractor() Extractor {
	return func(r *http.Request) string {
		if candidate := chi.URLParam(r, "locale"); candidate != "" {
			return sanitizeCandidate(candidate)
		}
		return sanitizeCandidate(firstPathSegment(r.URL.Path))
	}
}

// CookieExtractor extracts the locale candidate from a cookie.
func CookieExtractor(name string) Extractor {
	return func(r *http.Request) string {
		if name == "" {
			return ""
		}
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			return ""
		}
		return sanitizeCandidate(cookie.Value)
	}
}

// QueryExtractor extracts the locale candidate from a query parameter.
func QueryExtractor(name string) Extractor {
	return func(r *http.Request) string {
		if name == "" {
			return ""
		}
		return sanitizeCandidate(r.URL.Query().Get(name))
	}
}

// ChainExtractor tries the given extractors in order and returns the first
// non-empty candidate.
func ChainExtractor(extractors ...Extractor) Extractor {
	return func(r *http.Request) string {
		for _, extr := range extractors {
			if extr == nil {
				continue
			}
			if candidate := extr(r); candidate != "" {
				return candidate
			}
		}
		return ""
	}
}

// sanitizeCandidate trims whitespace and drops oversized values. It does not
// lowercase or otherwise normalize: locale codes match case-sensitively.
func sanitizeCandidate(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if len(candidate) > maxLocaleCodeLength {
		return ""
	}
	return candidate
}
