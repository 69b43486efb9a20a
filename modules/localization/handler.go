package localization

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localekit/pkg/cookie"
	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/logger"
)

type handlers struct {
	opts RouterOptions
}

// localeItem is the picker payload for a single locale.
type localeItem struct {
	Code       i18n.Code      `json:"code"`
	Name       string         `json:"name"`
	NativeName string         `json:"native_name"`
	Flag       string         `json:"flag"`
	Direction  i18n.Direction `json:"direction"`
	Current    bool           `json:"current"`
}

// listLocales returns all supported locales in catalog order with the
// current selection marked.
func (h *handlers) listLocales(w http.ResponseWriter, r *http.Request) {
	current := h.currentLocale(r)

	locales := h.opts.Catalog.Locales()
	items := make([]localeItem, len(locales))
	for i, l := range locales {
		items[i] = localeItem{
			Code:       l.Code,
			Name:       l.Name,
			NativeName: l.NativeName,
			Flag:       l.Flag,
			Direction:  l.Direction,
			Current:    l.Code == current,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"default": h.opts.Catalog.Default(),
		"locales": items,
	})
}

// exportMessages returns the message catalog of the current (or explicitly
// requested) locale for client-side consumption.
func (h *handlers) exportMessages(w http.ResponseWriter, r *http.Request) {
	code := h.currentLocale(r)
	if candidate := r.URL.Query().Get("locale"); candidate != "" {
		code = h.opts.Catalog.Resolve(candidate)
	}

	payload, err := h.opts.Translator.ExportJSON(code)
	if err != nil {
		h.opts.Logger.ErrorContext(r.Context(), "message export failed",
			logger.Locale(string(code)), logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to export messages",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Language", string(code))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(payload))
}

// switchLocale validates the requested locale through the switch use case
// and, when valid, persists the choice and redirects back to the localized
// variant of the page the request came from. Invalid codes are rejected
// with 422 and cause no navigation.
func (h *handlers) switchLocale(w http.ResponseWriter, r *http.Request) {
	target := i18n.Code(chi.URLParam(r, "locale"))
	returnPath := h.refererPath(r)

	repo := i18n.NewRouteRepository(
		h.opts.Catalog,
		firstSegment(returnPath),
		returnPath,
		func(location string) {
			h.persistChoice(w, target)
			http.Redirect(w, r, location, http.StatusSeeOther)
		},
	)

	if err := i18n.NewSwitcher(repo).Execute(target); err != nil {
		var invalid *i18n.InvalidLocaleError
		if errors.As(err, &invalid) {
			h.opts.Logger.InfoContext(r.Context(), "locale switch rejected",
				logger.Locale(invalid.Locale))
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error": invalid.Error(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "locale switch failed",
		})
		return
	}

	h.opts.Logger.InfoContext(r.Context(), "locale switched",
		logger.Locale(string(target)))
}

// currentLocale resolves the locale of the page the request came from: the
// referer path segment first, then the persisted cookie, then the default.
func (h *handlers) currentLocale(r *http.Request) i18n.Code {
	if seg := firstSegment(h.refererPath(r)); seg != "" && h.opts.Catalog.IsSupported(seg) {
		return i18n.Code(seg)
	}
	if h.opts.Cookies != nil {
		if val, err := h.opts.Cookies.Get(r, h.opts.CookieName); err == nil && h.opts.Catalog.IsSupported(val) {
			return i18n.Code(val)
		}
	}
	return h.opts.Catalog.Default()
}

// persistChoice stores the switched locale in the preference cookie, when a
// cookie manager is configured.
func (h *handlers) persistChoice(w http.ResponseWriter, code i18n.Code) {
	if h.opts.Cookies == nil {
		return
	}
	h.opts.Cookies.Set(w, h.opts.CookieName, string(code),
		cookie.WithMaxAge(h.opts.CookieMaxAge))
}

// refererPath returns the path of the same-host referer, or "/" when the
// referer is absent or points elsewhere. Cross-host redirects are never
// issued from here.
func (h *handlers) refererPath(r *http.Request) string {
	referer := r.Header.Get("Referer")
	if referer == "" {
		return "/"
	}
	parsed, err := url.Parse(referer)
	if err != nil {
		return "/"
	}
	if parsed.Host != "" && parsed.Host != r.Host {
		return "/"
	}
	if parsed.Path == "" {
		return "/"
	}
	return parsed.Path
}

func firstSegment(path string) string {
	trimmed := path
	if len(trimmed) > 0 && trimmed[0] == '/' {
		trimmed = trimmed[1:]
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '/' {
			return trimmed[:i]
		}
	}
	return trimmed
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
