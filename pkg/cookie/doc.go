// Package cookie provides a small cookie manager with sane defaults for
// persisting per-user preferences such as the chosen locale.
//
// A Manager carries default attributes (path, domain, SameSite, ...) applied
// to every cookie it writes; individual writes can override them with
// functional options.
//
//	m := cookie.New(cookie.WithMaxAge(365 * 24 * 3600))
//	m.Set(w, "locale", "th")
//
//	locale, err := m.Get(r, "locale")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// no stored preference
//	}
//
// Values are stored as-is. Nothing here signs or encrypts; a locale
// preference is not a secret.
package cookie
