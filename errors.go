// File: lixenwraith/promconf/errors.go
package promconf

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by registration, initialization, and update paths.
// Wrapped errors carry the offending key; match with errors.Is.
var (
	// ErrInvalidValue indicates a raw value that could not be parsed into the
	// setting's type. InvalidValueError carries the details.
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrDuplicateKey indicates two definitions registered under the same key.
	ErrDuplicateKey = errors.New("duplicate setting key")

	// ErrKeyNotFound indicates an operation on a key no definition declares.
	ErrKeyNotFound = errors.New("setting not registered")

	// ErrNotDynamic indicates an update or subscription on a static setting.
	ErrNotDynamic = errors.New("setting is not dynamic")

	// ErrAlreadySubscribed indicates a second change handler for one key.
	ErrAlreadySubscribed = errors.New("change handler already registered")

	// ErrConfigNotFound indicates the startup configuration file does not
	// exist. Callers treating the file as optional should test for it.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrCLIParse indicates malformed command-line arguments.
	ErrCLIParse = errors.New("CLI parse error")

	// ErrValueSize indicates a raw value exceeding MaxValueSize.
	ErrValueSize = errors.New("value exceeds maximum size")
)

// InvalidValueError reports a raw input rejected by a setting's parser.
// At startup it aborts initialization; at runtime the update is rejected and
// the previous value retained, so the administrative caller can surface the
// key, the rejected input, and (for enumerated settings) the accepted names.
type InvalidValueError struct {
	Key     string
	Raw     string
	Allowed []string
	Err     error
}

func (e *InvalidValueError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid value %q for setting %s: must be one of [%s]",
			e.Raw, e.Key, strings.Join(e.Allowed, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid value %q for setting %s: %v", e.Raw, e.Key, e.Err)
	}
	return fmt.Sprintf("invalid value %q for setting %s", e.Raw, e.Key)
}

// Unwrap exposes the underlying parse failure, if any.
func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidValue so callers can match the sentinel without
// asserting the concrete type.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
