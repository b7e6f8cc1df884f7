// File: lixenwraith/promconf/setting.go
package promconf

import "strconv"

// Kind identifies the value type a setting holds.
type Kind uint8

const (
	KindBool Kind = iota
	KindString
	KindEnum
	KindStringList
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindStringList:
		return "string_list"
	default:
		return "unknown"
	}
}

// Setting is an immutable description of one configuration key: its dotted
// name, value kind, default, parser, and whether it may change after startup.
// Definitions are created once at module initialization and never mutated;
// all live state belongs to the Registry.
type Setting struct {
	key     string
	kind    Kind
	def     any
	dynamic bool
	allowed []string
	parse   func(raw string) (any, error)
}

// BoolSetting declares a boolean setting. The parser accepts the forms
// understood by strconv.ParseBool.
func BoolSetting(key string, def bool, dynamic bool) *Setting {
	return &Setting{
		key:     key,
		kind:    KindBool,
		def:     def,
		dynamic: dynamic,
		parse: func(raw string) (any, error) {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, &InvalidValueError{Key: key, Raw: raw, Err: err}
			}
			return v, nil
		},
	}
}

// StringSetting declares a plain string setting. Any raw input is accepted.
func StringSetting(key string, def string, dynamic bool) *Setting {
	return &Setting{
		key:     key,
		kind:    KindString,
		def:     def,
		dynamic: dynamic,
		parse: func(raw string) (any, error) {
			return raw, nil
		},
	}
}

// EnumSetting declares an IndexFilterOption setting. Raw input must
// case-exactly match one of the declared option names; anything else is
// rejected with an InvalidValueError carrying the full allowed list.
func EnumSetting(key string, def IndexFilterOption, dynamic bool) *Setting {
	allowed := OptionNames()
	return &Setting{
		key:     key,
		kind:    KindEnum,
		def:     def,
		dynamic: dynamic,
		allowed: allowed,
		parse: func(raw string) (any, error) {
			v, err := ParseIndexFilterOption(raw)
			if err != nil {
				return nil, &InvalidValueError{Key: key, Raw: raw, Allowed: allowed, Err: err}
			}
			return v, nil
		},
	}
}

// StringListSetting declares a static list of strings. It exists to publish
// fixed documentation through the same introspection surface as the live
// settings; it is never dynamic and is not read from startup sources.
func StringListSetting(key string, values []string) *Setting {
	def := make([]string, len(values))
	copy(def, values)
	return &Setting{
		key:  key,
		kind: KindStringList,
		def:  def,
		parse: func(raw string) (any, error) {
			return splitList(raw), nil
		},
	}
}

// Key returns the dotted setting name.
func (s *Setting) Key() string { return s.key }

// Kind returns the value kind the setting holds.
func (s *Setting) Kind() Kind { return s.kind }

// Default returns the value used when no source provides one.
func (s *Setting) Default() any { return s.def }

// Dynamic reports whether the setting accepts runtime updates.
func (s *Setting) Dynamic() bool { return s.dynamic }

// Allowed returns the accepted raw values for enumerated settings, nil for
// other kinds.
func (s *Setting) Allowed() []string {
	if s.allowed == nil {
		return nil
	}
	out := make([]string, len(s.allowed))
	copy(out, s.allowed)
	return out
}

// Parse converts raw input into the setting's value type. Failures are
// always *InvalidValueError.
func (s *Setting) Parse(raw string) (any, error) {
	return s.parse(raw)
}
