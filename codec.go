package iso639

import (
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler. The marshaled form is the
// canonical two-letter code, so encoding/json and any other
// TextMarshaler-aware framework serializes a LanguageCode as that string.
// Marshaling an unregistered value fails.
func (x LanguageCode) MarshalText() ([]byte, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return []byte(x), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse. Anything but
// an exact registered code fails with ErrUnrecognizedCode.
func (x *LanguageCode) UnmarshalText(data []byte) error {
	code, err := Parse(string(data))
	if err != nil {
		return err
	}
	*x = code
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (x LanguageCode) MarshalYAML() (any, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return string(x), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (x *LanguageCode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return goerr.Wrap(err, "language code must be a YAML string")
	}
	code, err := Parse(s)
	if err != nil {
		return err
	}
	*x = code
	return nil
}
