// FILE: lixenwraith/promconf/option.go
package promconf

import "fmt"

// IndexFilterOption selects how index name patterns from
// prometheus.indices_filter.selected_indices are matched against the live
// set of indices in the host cluster. The set of values is closed; raw input
// must case-exactly match one of the declared names.
type IndexFilterOption uint8

const (
	StrictExpandOpen IndexFilterOption = iota
	StrictExpandOpenHidden
	StrictExpandOpenForbidClosed
	StrictExpandOpenForbidClosedIgnoreThrottled
	StrictExpandOpenClosed
	StrictExpandOpenClosedHidden
	StrictSingleIndexNoExpandForbidClosed
	LenientExpandOpen
	LenientExpandOpenHidden
	LenientExpandOpenClosed
	LenientExpandOpenClosedHidden

	numIndexFilterOptions
)

// DefaultIndexFilterOption is the value used when no explicit selection is
// configured.
const DefaultIndexFilterOption = StrictExpandOpenForbidClosed

var optionNames = [numIndexFilterOptions]string{
	StrictExpandOpen:                            "STRICT_EXPAND_OPEN",
	StrictExpandOpenHidden:                      "STRICT_EXPAND_OPEN_HIDDEN",
	StrictExpandOpenForbidClosed:                "STRICT_EXPAND_OPEN_FORBID_CLOSED",
	StrictExpandOpenForbidClosedIgnoreThrottled: "STRICT_EXPAND_OPEN_FORBID_CLOSED_IGNORE_THROTTLED",
	StrictExpandOpenClosed:                      "STRICT_EXPAND_OPEN_CLOSED",
	StrictExpandOpenClosedHidden:                "STRICT_EXPAND_OPEN_CLOSED_HIDDEN",
	StrictSingleIndexNoExpandForbidClosed:       "STRICT_SINGLE_INDEX_NO_EXPAND_FORBID_CLOSED",
	LenientExpandOpen:                           "LENIENT_EXPAND_OPEN",
	LenientExpandOpenHidden:                     "LENIENT_EXPAND_OPEN_HIDDEN",
	LenientExpandOpenClosed:                     "LENIENT_EXPAND_OPEN_CLOSED",
	LenientExpandOpenClosedHidden:               "LENIENT_EXPAND_OPEN_CLOSED_HIDDEN",
}

// optionDescriptions holds the operator-facing documentation published
// through the prometheus.indices_filter.options_description setting. The
// wording is part of the exporter's public surface; keep it stable.
var optionDescriptions = [numIndexFilterOptions]string{
	StrictExpandOpen: "STRICT_EXPAND_OPEN: indices options that requires every specified index to exist, " +
		"expands wildcards only to open indices and allows that no indices are resolved from wildcard " +
		"expressions (not returning an error).",
	StrictExpandOpenHidden: "STRICT_EXPAND_OPEN_HIDDEN: indices options that requires every specified index to exist, " +
		"expands wildcards only to open indices, includes hidden indices, and allows that no indices are " +
		"resolved from wildcard expressions (not returning an error).",
	StrictExpandOpenForbidClosed: "STRICT_EXPAND_OPEN_FORBID_CLOSED: indices options that requires every specified " +
		"index to exist, expands wildcards only to open indices, allows that no indices are resolved from " +
		"wildcard expressions (not returning an error) and forbids the use of closed indices by throwing an error.",
	StrictExpandOpenForbidClosedIgnoreThrottled: "STRICT_EXPAND_OPEN_FORBID_CLOSED_IGNORE_THROTTLED: indices options " +
		"that requires every specified index to exist, expands wildcards only to open indices, allows that no " +
		"indices are resolved from wildcard expressions (not returning an error), forbids the use of closed indices " +
		"by throwing an error and ignores indices that are throttled.",
	StrictExpandOpenClosed: "STRICT_EXPAND_OPEN_CLOSED: indices option that requires every specified index to exist, " +
		"expands wildcards to both open and closed indices and allows that no indices are resolved from wildcard " +
		"expressions (not returning an error).",
	StrictExpandOpenClosedHidden: "STRICT_EXPAND_OPEN_CLOSED_HIDDEN: indices option that requires every specified " +
		"index to exist, expands wildcards to both open and closed indices, includes hidden indices, and allows " +
		"that no indices are resolved from wildcard expressions (not returning an error).",
	StrictSingleIndexNoExpandForbidClosed: "STRICT_SINGLE_INDEX_NO_EXPAND_FORBID_CLOSED: indices option that requires " +
		"each specified index or alias to exist, doesn't expand wildcards and throws error if any of the aliases " +
		"resolves to multiple indices.",
	LenientExpandOpen: "LENIENT_EXPAND_OPEN: indices options that ignores unavailable indices, expands wildcards only " +
		"to open indices and allows that no indices are resolved from wildcard expressions (not returning an error).",
	LenientExpandOpenHidden: "LENIENT_EXPAND_OPEN_HIDDEN: indices options that ignores unavailable indices, expands " +
		"wildcards to open and hidden indices, and allows that no indices are resolved from wildcard expressions " +
		"(not returning an error).",
	LenientExpandOpenClosed: "LENIENT_EXPAND_OPEN_CLOSED: indices options that ignores unavailable indices, expands " +
		"wildcards to both open and closed indices and allows that no indices are resolved from wildcard " +
		"expressions (not returning an error).",
	LenientExpandOpenClosedHidden: "LENIENT_EXPAND_OPEN_CLOSED_HIDDEN: indices options that ignores unavailable " +
		"indices, expands wildcards to all open and closed indices and allows that no indices are resolved from " +
		"wildcard expressions (not returning an error).",
}

// String returns the canonical upper-case name of the option.
func (o IndexFilterOption) String() string {
	if o >= numIndexFilterOptions {
		return fmt.Sprintf("IndexFilterOption(%d)", uint8(o))
	}
	return optionNames[o]
}

// Description returns the operator-facing documentation line for the option.
func (o IndexFilterOption) Description() string {
	if o >= numIndexFilterOptions {
		return ""
	}
	return optionDescriptions[o]
}

// MarshalText renders the option as its canonical name.
func (o IndexFilterOption) MarshalText() ([]byte, error) {
	if o >= numIndexFilterOptions {
		return nil, fmt.Errorf("%w: IndexFilterOption(%d)", ErrInvalidValue, uint8(o))
	}
	return []byte(optionNames[o]), nil
}

// UnmarshalText parses a canonical option name.
func (o *IndexFilterOption) UnmarshalText(text []byte) error {
	parsed, err := ParseIndexFilterOption(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseIndexFilterOption converts a raw string into an IndexFilterOption.
// Matching is case-exact; anything else is rejected, never defaulted.
func ParseIndexFilterOption(raw string) (IndexFilterOption, error) {
	for i, name := range optionNames {
		if raw == name {
			return IndexFilterOption(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a recognized index filter option", ErrInvalidValue, raw)
}

// Options returns every IndexFilterOption in declaration order.
func Options() []IndexFilterOption {
	opts := make([]IndexFilterOption, numIndexFilterOptions)
	for i := range opts {
		opts[i] = IndexFilterOption(i)
	}
	return opts
}

// OptionNames returns the canonical names of every option in declaration
// order.
func OptionNames() []string {
	names := make([]string, numIndexFilterOptions)
	copy(names, optionNames[:])
	return names
}

// OptionDescriptions returns the full documentation list published through
// the options_description setting.
func OptionDescriptions() []string {
	descs := make([]string, numIndexFilterOptions)
	copy(descs, optionDescriptions[:])
	return descs
}
