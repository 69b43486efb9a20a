package i18n

// Switcher is the single entry point for "the user wants locale X". It
// enforces the invariant that only catalog-valid codes ever reach the
// repository's navigation side effect. It is stateless: validate, then
// delegate.
type Switcher struct {
	repo Repository
}

// NewSwitcher creates a switcher over the given repository.
// Panics on a nil repository to enforce fail-fast wiring.
func NewSwitcher(repo Repository) *Switcher {
	if repo == nil {
		panic("i18n: NewSwitcher: nil repository")
	}
	return &Switcher{repo: repo}
}

// Execute validates requested against the catalog and, if valid, instructs
// the repository to navigate. An unsupported code yields *InvalidLocaleError
// and no side effects. Repeating the call with a valid code is safe: the
// second navigation targets the same URL.
func (s *Switcher) Execute(requested Code) error {
	if !s.repo.IsValidLocale(string(requested)) {
		return &InvalidLocaleError{Locale: string(requested)}
	}
	s.repo.SetLocale(requested)
	return nil
}
