package i18n_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

func newTestRouter(t *testing.T, loader i18n.Loader, opts ...i18n.MiddlewareOption) chi.Router {
	t.Helper()
	n, err := i18n.NewNegotiator(i18n.DefaultCatalog(), loader)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(i18n.Middleware(n, opts...))
		r.Get("/dashboard", func(w http.ResponseWriter, req *http.Request) {
			lctx, ok := i18n.FromContext(req.Context())
			require.True(t, ok)
			_, _ = w.Write([]byte(string(lctx.Locale.Code) + ":" + lctx.Messages["language"]))
		})
	})
	return r
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("injects negotiated locale into request context", func(t *testing.T) {
		t.Parallel()
		r := newTestRouter(t, testLoader())

		req := httptest.NewRequest(http.MethodGet, "/th/dashboard", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "th:ไทย", rec.Body.String())
		assert.Equal(t, "th", rec.Header().Get("Content-Language"))
	})

	t.Run("unsupported path segment renders the default locale", func(t *testing.T) {
		t.Parallel()
		n, err := i18n.NewNegotiator(i18n.DefaultCatalog(), testLoader())
		require.NoError(t, err)

		r := chi.NewRouter()
		r.Use(i18n.Middleware(n))
		r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(string(i18n.LocaleFromContext(req.Context()))))
		})

		req := httptest.NewRequest(http.MethodGet, "/fr/dashboard", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "en", rec.Body.String())
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	})

	t.Run("catalog load failure responds 500", func(t *testing.T) {
		t.Parallel()
		r := newTestRouter(t, &failingLoader{err: errors.New("missing resource")})

		req := httptest.NewRequest(http.MethodGet, "/en/dashboard", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("custom load error handler", func(t *testing.T) {
		t.Parallel()
		r := newTestRouter(t, &failingLoader{err: errors.New("missing resource")},
			i18n.WithLoadErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/en/dashboard", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing resource")
	})

	t.Run("custom extractor", func(t *testing.T) {
		t.Parallel()
		r := newTestRouter(t, testLoader(),
			i18n.WithExtractor(i18n.QueryExtractor("hl")))

		req := httptest.NewRequest(http.MethodGet, "/en/dashboard?hl=th", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "th:ไทย", rec.Body.String())
	})
}
