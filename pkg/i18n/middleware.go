package i18n

import (
	"net/http"
)

// middlewareConfig holds configuration for the negotiation middleware.
type middlewareConfig struct {
	extractor Extractor
	onError   func(w http.ResponseWriter, r *http.Request, err error)
}

// MiddlewareOption configures the negotiation middleware.
type MiddlewareOption func(*middlewareConfig)

// WithExtractor overrides the locale candidate source. The default reads the
// chi {locale} route parameter, falling back to the first path segment.
func WithExtractor(extr Extractor) MiddlewareOption {
	return func(c *middlewareConfig) {
		if extr != nil {
			c.extractor = extr
		}
	}
}

// WithLoadErrorHandler overrides the response written when the message
// catalog cannot be loaded. The default responds 500 Internal Server Error:
// a request without its catalog is treated as fatal, never served with a
// partial or default catalog.
func WithLoadErrorHandler(h func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onError = h
		}
	}
}

// Middleware returns an HTTP middleware that negotiates the request locale
// once per incoming request and stores the resulting LocaleContext in the
// request context. It also surfaces the decision to clients via the
// Content-Language response header.
//
// Mount it under a chi route that captures the locale path segment:
//
//	r.Route("/{locale}", func(r chi.Router) {
//		r.Use(i18n.Middleware(negotiator))
//		...
//	})
func Middleware(n *Negotiator, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		extractor: PathExtractor(),
		onError: func(w http.ResponseWriter, r *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lctx, err := n.Negotiate(r.Context(), cfg.extractor(r))
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			w.Header().Set("Content-Language", string(lctx.Locale.Code))
			next.ServeHTTP(w, r.WithContext(WithLocaleContext(r.Context(), lctx)))
		})
	}
}
