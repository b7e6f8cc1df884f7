// File: lixenwraith/promconf/helper.go
package promconf

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flattenMap converts a nested map into flat dot-notation keys. Non-map
// values (including arrays) are kept as leaves.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)
	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if sub, ok := value.(map[string]any); ok {
			for subPath, subValue := range flattenMap(sub, path) {
				flat[subPath] = subValue
			}
			continue
		}
		flat[path] = value
	}
	return flat
}

// setNestedValue writes a value into a nested map at the dot-notation path,
// creating intermediate maps as needed. A non-map intermediate value is
// replaced by a map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// isValidKeySegment checks that a single path segment is a valid bare TOML
// key part: ASCII letters, digits, underscores, and dashes.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// validKey checks every dot-separated segment of a setting key.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, segment := range strings.Split(key, ".") {
		if !isValidKeySegment(segment) {
			return false
		}
	}
	return true
}

// splitList splits a comma-separated value into its entries. Empty entries
// (from leading, trailing, or doubled commas) are dropped, so "" yields an
// empty result and "a,,b" yields [a b]. Entries are not trimmed.
func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// stringifyValue renders a decoded configuration file value as the raw
// string form the setting parsers consume. Arrays become comma-separated
// lists so a TOML/YAML list can feed a CSV setting.
func stringifyValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case json.Number:
		return t.String(), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case []string:
		return strings.Join(t, ","), nil
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			s, err := stringifyValue(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	case nil:
		return "", fmt.Errorf("cannot use nil as a setting value")
	default:
		return "", fmt.Errorf("cannot represent %T as a setting value", v)
	}
}
