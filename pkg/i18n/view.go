package i18n

// View is the presentation adapter: everything a locale picker UI needs,
// bundled for one render. Construct a fresh View per request from the
// current repository binding; by construction a view can never be stale
// across navigations because its repository never outlives the request.
type View struct {
	// Current is the resolved locale of the active request.
	Current Locale
	// Locales lists all supported locales in catalog order.
	Locales []Locale

	switcher *Switcher
}

// NewView builds a view over the given catalog and per-request repository.
func NewView(catalog *Catalog, repo Repository) *View {
	current, _ := catalog.Get(repo.CurrentLocale())
	return &View{
		Current:  current,
		Locales:  catalog.Locales(),
		switcher: NewSwitcher(repo),
	}
}

// Switch requests a locale change through the switch use case. Unsupported
// codes are rejected with *InvalidLocaleError and cause no navigation.
func (v *View) Switch(code Code) error {
	return v.switcher.Execute(code)
}
