package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/cookie"
)

func TestManagerSetGet(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	rec := httptest.NewRecorder()
	m.Set(rec, "locale", "th")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "locale", cookies[0].Name)
	assert.Equal(t, "th", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	val, err := m.Get(req, "locale")
	require.NoError(t, err)
	assert.Equal(t, "th", val)
}

func TestManagerGetMissing(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.Get(req, "locale")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManagerOptions(t *testing.T) {
	t.Parallel()
	m := cookie.New(
		cookie.WithDomain("example.com"),
		cookie.WithSecure(true),
		cookie.WithMaxAge(3600),
	)

	rec := httptest.NewRecorder()
	m.Set(rec, "locale", "en", cookie.WithMaxAge(60))

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "example.com", c.Domain)
	assert.True(t, c.Secure)
	// Per-write option overrides the manager default.
	assert.Equal(t, 60, c.MaxAge)
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	rec := httptest.NewRecorder()
	m.Delete(rec, "locale")

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "locale", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	m := cookie.NewFromConfig(cookie.Config{
		Path:     "/app",
		MaxAge:   120,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	rec := httptest.NewRecorder()
	m.Set(rec, "locale", "en")

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, 120, c.MaxAge)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}
