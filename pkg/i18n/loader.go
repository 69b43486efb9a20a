package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/localekit/pkg/cache"
)

// Loader resolves the message catalog for a single locale, keyed by its
// code. It is the boundary to the resource storage: per-locale files on
// disk, embedded filesystems, or an in-memory table. Loading is the only
// suspension point of a locale negotiation and must complete (or fail)
// before the request context is considered resolved.
type Loader interface {
	Load(ctx context.Context, code Code) (Messages, error)
}

// resourceExtensions lists the file extensions tried when locating a
// per-locale resource, in preference order.
var resourceExtensions = []string{"json", "yaml", "yml"}

// MapLoader serves message catalogs from an in-memory table. Primarily
// useful in tests and for small static message sets.
type MapLoader struct {
	Data map[Code]Messages
}

// Load implements the Loader interface.
func (l *MapLoader) Load(_ context.Context, code Code) (Messages, error) {
	msgs, ok := l.Data[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, code)
	}
	return msgs, nil
}

// DirLoader reads per-locale resource files (<code>.yaml, <code>.json, ...)
// from a directory on the local filesystem.
type DirLoader struct {
	parser Parser
	dir    string
}

// NewDirLoader creates a DirLoader. Returns nil if parser is nil or dir is
// empty.
func NewDirLoader(parser Parser, dir string) *DirLoader {
	if parser == nil || dir == "" {
		return nil
	}
	return &DirLoader{parser: parser, dir: dir}
}

// Load implements the Loader interface.
func (l *DirLoader) Load(ctx context.Context, code Code) (Messages, error) {
	path, ok := l.resourcePath(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrUnknownResource, code, l.dir)
	}

	content, err := readFileCtx(ctx, path)
	if err != nil {
		return nil, err
	}
	return parseResource(ctx, l.parser, path, content)
}

// resourcePath locates the resource file for code among the supported
// extensions, preferring earlier entries of resourceExtensions.
func (l *DirLoader) resourcePath(code Code) (string, bool) {
	for _, ext := range resourceExtensions {
		if !l.parser.SupportsFileExtension(ext) {
			continue
		}
		path := filepath.Join(l.dir, string(code)+"."+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// FSLoader reads per-locale resource files from any fs.FS, which covers
// embed.FS for shipping translations inside the binary.
type FSLoader struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSLoader creates an FSLoader rooted at dir inside fsys. Returns nil if
// parser or fsys is nil. An empty dir reads from the filesystem root.
func NewFSLoader(parser Parser, fsys fs.FS, dir string) *FSLoader {
	if parser == nil || fsys == nil {
		return nil
	}
	return &FSLoader{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the Loader interface.
func (l *FSLoader) Load(ctx context.Context, code Code) (Messages, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	for _, ext := range resourceExtensions {
		if !l.parser.SupportsFileExtension(ext) {
			continue
		}
		path := string(code) + "." + ext
		if l.dir != "" {
			path = l.dir + "/" + path
		}

		content, err := fs.ReadFile(l.fsys, path)
		if err != nil {
			continue
		}
		return parseResource(ctx, l.parser, path, content)
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrUnknownResource, code, l.dir)
}

// CachedLoader decorates a Loader with an LRU cache keyed by locale code.
// The negotiated request context itself is never cached.
type CachedLoader struct {
	next Loader
	lru  *cache.LRU[Code, Messages]
}

// NewCachedLoader wraps next with an LRU cache holding up to capacity
// message catalogs.
func NewCachedLoader(next Loader, capacity int) *CachedLoader {
	if next == nil {
		panic("i18n: NewCachedLoader: nil loader")
	}
	return &CachedLoader{
		next: next,
		lru:  cache.NewLRU[Code, Messages](capacity),
	}
}

// Load implements the Loader interface. Failed loads are not cached so a
// transiently missing resource can recover on a later request.
func (l *CachedLoader) Load(ctx context.Context, code Code) (Messages, error) {
	if msgs, ok := l.lru.Get(code); ok {
		return msgs, nil
	}
	msgs, err := l.next.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	l.lru.Set(code, msgs)
	return msgs, nil
}

// readFileCtx reads a file while honoring context cancellation. The read
// itself runs in a goroutine; if the context expires first the content is
// abandoned.
func readFileCtx(ctx context.Context, path string) ([]byte, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}

// parseResource parses raw resource content and flattens it into Messages.
func parseResource(ctx context.Context, parser Parser, path string, content []byte) (Messages, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: resource %q is empty", ErrCatalogLoad, path)
	}

	raw, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: resource %q has no messages", ErrCatalogLoad, path)
	}
	return flattenMessages(raw), nil
}
