package i18n

import (
	"fmt"
	"sort"
)

// Messages is the loaded message catalog of a single locale: a flat mapping
// from dot-separated translation key to localized string. One instance
// exists per locale; it is owned by the request context for the duration of
// rendering and never mutated by this package after loading.
type Messages map[string]string

// Keys returns all translation keys in sorted order.
func (m Messages) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MissingKeys returns the keys present in reference but absent from m, in
// sorted order. Useful for flagging translation key-set drift between
// locales without failing the request.
func (m Messages) MissingKeys(reference Messages) []string {
	var missing []string
	for k := range reference {
		if _, ok := m[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}

// flattenMessages converts a possibly nested resource map into flat
// dot-separated keys: {"nav": {"home": "Home"}} becomes {"nav.home": "Home"}.
// Non-string leaves are stringified so numeric or boolean resource values do
// not drop silently.
func flattenMessages(raw map[string]any) Messages {
	out := make(Messages, len(raw))
	flattenInto(out, "", raw)
	return out
}

func flattenInto(out Messages, prefix string, raw map[string]any) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flattenInto(out, key, val)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for ck, cv := range val {
				if cks, ok := ck.(string); ok {
					converted[cks] = cv
				}
			}
			flattenInto(out, key, converted)
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}
