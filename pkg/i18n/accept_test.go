package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

func TestAcceptLanguageExtractor(t *testing.T) {
	t.Parallel()
	extractor := i18n.AcceptLanguageExtractor(i18n.DefaultCatalog())

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "exact match", header: "th", expected: "th"},
		{name: "region variant matches base", header: "en-US,en;q=0.9", expected: "en"},
		{name: "quality ordering respected", header: "th;q=0.9,en;q=0.5", expected: "th"},
		{name: "thai region variant", header: "th-TH,th;q=0.8", expected: "th"},
		{name: "unsupported language falls through", header: "fr-FR,de;q=0.5", expected: ""},
		{name: "empty header", header: "", expected: ""},
		{name: "malformed header", header: ";;;", expected: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.expected, extractor(req))
		})
	}
}

func TestAcceptLanguageExtractorAsNegotiationExtension(t *testing.T) {
	t.Parallel()

	// Path wins when present; the header only fills the gap.
	chain := i18n.ChainExtractor(
		i18n.PathExtractor(),
		i18n.AcceptLanguageExtractor(i18n.DefaultCatalog()),
	)

	req := httptest.NewRequest(http.MethodGet, "/en/home", nil)
	req.Header.Set("Accept-Language", "th")
	assert.Equal(t, "en", chain(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "th")
	assert.Equal(t, "th", chain(req))
}
