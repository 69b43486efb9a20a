package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Negotiator resolves the effective locale for an incoming request and loads
// its message catalog, guaranteeing the rendering layer always receives a
// valid locale/catalog pair.
type Negotiator struct {
	catalog *Catalog
	loader  Loader
	logger  *slog.Logger
}

// NegotiatorOption configures a Negotiator.
type NegotiatorOption func(*Negotiator)

// WithNegotiatorLogger provides a logger for fallback diagnostics. If not
// specified, a discard logger is used.
func WithNegotiatorLogger(logger *slog.Logger) NegotiatorOption {
	return func(n *Negotiator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// NewNegotiator creates a Negotiator over the given catalog and loader.
func NewNegotiator(catalog *Catalog, loader Loader, opts ...NegotiatorOption) (*Negotiator, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if loader == nil {
		return nil, fmt.Errorf("loader is nil")
	}

	n := &Negotiator{
		catalog: catalog,
		loader:  loader,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Negotiate resolves the locale for one request. An absent or unsupported
// candidate deterministically falls back to the catalog default; no
// negotiation against client preference headers happens here. The message
// catalog for the resolved locale is then loaded; a load failure is fatal
// for the request and is returned wrapped in ErrCatalogLoad rather than
// degraded to a partial or default catalog.
func (n *Negotiator) Negotiate(ctx context.Context, candidate string) (*LocaleContext, error) {
	resolved := n.catalog.Default()
	if candidate != "" && n.catalog.IsSupported(candidate) {
		resolved = Code(candidate)
	} else if candidate != "" {
		n.logger.DebugContext(ctx, "unsupported locale candidate, falling back to default",
			"candidate", candidate, "default", string(resolved))
	}

	messages, err := n.loader.Load(ctx, resolved)
	if err != nil {
		return nil, errors.Join(ErrCatalogLoad, err)
	}

	locale, _ := n.catalog.Get(resolved)
	return &LocaleContext{
		Locale:   locale,
		Messages: messages,
	}, nil
}

// Catalog returns the locale catalog the negotiator resolves against.
func (n *Negotiator) Catalog() *Catalog {
	return n.catalog
}
