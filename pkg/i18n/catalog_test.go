package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid catalog", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.NewCatalog("en", i18n.English, i18n.Thai)
		require.NoError(t, err)
		assert.Equal(t, i18n.Code("en"), c.Default())
		assert.Equal(t, []i18n.Code{"en", "th"}, c.Codes())
	})

	t.Run("empty catalog rejected", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog("en")
		assert.ErrorIs(t, err, i18n.ErrEmptyCatalog)
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog("en", i18n.English, i18n.English)
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("empty code rejected", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog("en", i18n.Locale{Name: "Nameless"})
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("default must be in catalog", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog("fr", i18n.English, i18n.Thai)
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})
}

func TestCatalogIsSupported(t *testing.T) {
	t.Parallel()
	c := i18n.DefaultCatalog()

	// Every catalog code is supported.
	for _, code := range c.Codes() {
		assert.True(t, c.IsSupported(string(code)), "expected %q to be supported", code)
	}

	// Matching is exact and case-sensitive.
	for _, candidate := range []string{"fr", "", "EN", "Th", "en-US", "xx"} {
		assert.False(t, c.IsSupported(candidate), "expected %q to be unsupported", candidate)
	}
}

func TestCatalogResolve(t *testing.T) {
	t.Parallel()
	c := i18n.DefaultCatalog()

	tests := []struct {
		name      string
		candidate string
		expected  i18n.Code
	}{
		{name: "supported candidate", candidate: "th", expected: "th"},
		{name: "default candidate", candidate: "en", expected: "en"},
		{name: "unsupported candidate falls back", candidate: "fr", expected: "en"},
		{name: "empty candidate falls back", candidate: "", expected: "en"},
		{name: "case mismatch falls back", candidate: "TH", expected: "en"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, c.Resolve(tt.candidate))
		})
	}
}

func TestCatalogLocalesIsACopy(t *testing.T) {
	t.Parallel()
	c := i18n.DefaultCatalog()

	locales := c.Locales()
	locales[0].Name = "mutated"

	fresh := c.Locales()
	assert.Equal(t, "English", fresh[0].Name)
}

func TestCatalogGet(t *testing.T) {
	t.Parallel()
	c := i18n.DefaultCatalog()

	thai, ok := c.Get("th")
	require.True(t, ok)
	assert.Equal(t, "ไทย", thai.NativeName)
	assert.Equal(t, i18n.DirectionLTR, thai.Direction)

	_, ok = c.Get("fr")
	assert.False(t, ok)
}

func TestMustCatalogPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		i18n.MustCatalog("fr", i18n.English)
	})
}
