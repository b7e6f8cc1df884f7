// FILE: lixenwraith/promconf/decode.go
package promconf

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes current setting values into the target struct pointer.
// basePath selects a subtree, so Scan("prometheus.indices_filter", &f)
// decodes only that table; the empty string decodes everything. Struct
// fields map by `toml` tag.
func (r *Registry) Scan(basePath string, target any) error {
	// Validate target
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	nestedMap := make(map[string]any)
	for key, value := range r.Snapshot() {
		setNestedValue(nestedMap, key, value)
	}

	// Navigate to basePath section
	sectionData := navigateToPath(nestedMap, basePath)

	// Ensure we have a map to decode
	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		if sectionData == nil {
			sectionMap = make(map[string]any) // Empty section
		} else {
			return fmt.Errorf("path %q refers to non-map value (type %T)", basePath, sectionData)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       scanDecodeHook(),
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", basePath, err)
	}

	return nil
}

// scanDecodeHook returns the composite decode hook for all type conversions
func scanDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		optionNameHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// optionNameHookFunc converts between IndexFilterOption values and their
// names, so targets can declare either the enum type or a plain string.
func optionNameHookFunc() mapstructure.DecodeHookFunc {
	optionType := reflect.TypeOf(IndexFilterOption(0))
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f == optionType && t.Kind() == reflect.String {
			return data.(IndexFilterOption).String(), nil
		}
		if f.Kind() == reflect.String && t == optionType {
			return ParseIndexFilterOption(data.(string))
		}
		return data, nil
	}
}

// navigateToPath traverses nested map to reach the specified path
func navigateToPath(nested map[string]any, path string) any {
	if path == "" {
		return nested
	}

	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	segments := strings.Split(path, ".")
	current := any(nested)

	for _, segment := range segments {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		value, exists := currentMap[segment]
		if !exists {
			return nil
		}
		current = value
	}

	return current
}
