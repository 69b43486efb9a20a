package i18n

import (
	"context"
	"strings"
)

// Parser parses the content of a single per-locale message resource file
// (e.g. en.yaml) into a possibly nested key/value map.
type Parser interface {
	// Parse processes the resource content and returns the raw message map
	// for one locale. Nested maps are allowed and are flattened by the
	// loader into dot-separated keys.
	Parse(ctx context.Context, content string) (map[string]any, error)

	// SupportsFileExtension checks whether the parser handles files with
	// the given extension. The extension may be passed with or without a
	// leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser matching the file extension, or nil when
// the extension is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(fileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func fileExtension(filename string) string {
	if idx := strings.LastIndexByte(filename, '.'); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
