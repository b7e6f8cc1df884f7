// File: lixenwraith/promconf/type.go
package promconf

import (
	"fmt"
	"strconv"
	"strings"
)

// String retrieves a string setting value by key.
// Attempts conversion from the other stored kinds if the value isn't
// already a string.
func (r *Registry) String(key string) (string, error) {
	val, found := r.Get(key)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case IndexFilterOption:
		return v.String(), nil
	case []string:
		return strings.Join(v, ","), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for key %s", val, key)
	}
}

// Bool retrieves a boolean setting value by key.
// Attempts conversion from parsable strings.
func (r *Registry) Bool(key string) (bool, error) {
	val, found := r.Get(key)
	if !found {
		return false, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for key %s: %w", v, key, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("cannot convert type %T to bool for key %s", val, key)
	}
}

// StringSlice retrieves a string list setting value by key. The returned
// slice is a copy. A plain string value is split as a comma-separated list.
func (r *Registry) StringSlice(key string) ([]string, error) {
	val, found := r.Get(key)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	switch v := val.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case string:
		return splitList(v), nil
	default:
		return nil, fmt.Errorf("cannot convert type %T to []string for key %s", val, key)
	}
}

// Option retrieves an index filter option setting value by key.
// Attempts conversion from option-name strings.
func (r *Registry) Option(key string) (IndexFilterOption, error) {
	val, found := r.Get(key)
	if !found {
		return DefaultIndexFilterOption, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	switch v := val.(type) {
	case IndexFilterOption:
		return v, nil
	case string:
		opt, err := ParseIndexFilterOption(v)
		if err != nil {
			return DefaultIndexFilterOption, fmt.Errorf("cannot convert string %q to option for key %s: %w", v, key, err)
		}
		return opt, nil
	default:
		return DefaultIndexFilterOption, fmt.Errorf("cannot convert type %T to option for key %s", val, key)
	}
}
