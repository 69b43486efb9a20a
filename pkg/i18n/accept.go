package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// AcceptLanguageExtractor extracts a locale candidate from the
// Accept-Language header using BCP 47 matching, so "en-US;q=0.9, th;q=0.8"
// resolves to a supported catalog code.
//
// This is a deliberate extension point: the canonical path-based negotiation
// performs exact, case-sensitive code matching only and never consults
// client preference headers. Opt in by chaining it behind PathExtractor:
//
//	i18n.WithExtractor(i18n.ChainExtractor(
//		i18n.PathExtractor(),
//		i18n.AcceptLanguageExtractor(catalog),
//	))
func AcceptLanguageExtractor(catalog *Catalog) Extractor {
	codes := catalog.Codes()
	tags := make([]language.Tag, 0, len(codes))
	matched := make([]Code, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(string(code))
		if err != nil {
			// Non-BCP47 catalog codes simply never match by header.
			continue
		}
		tags = append(tags, tag)
		matched = append(matched, code)
	}

	if len(tags) == 0 {
		return func(*http.Request) string { return "" }
	}
	matcher := language.NewMatcher(tags)

	return func(r *http.Request) string {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}

		preferred, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(preferred) == 0 {
			return ""
		}

		_, idx, conf := matcher.Match(preferred...)
		if conf == language.No {
			return ""
		}
		return string(matched[idx])
	}
}
