// Package iso639 provides a typed representation of the ISO 639-1 standard:
// the closed set of two-letter language codes. A LanguageCode converts
// losslessly to and from its canonical code string, carries the English
// language name and language family, and serializes as the code.
package iso639

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/language"
)

// ErrUnrecognizedCode is returned when a string does not exactly match any
// registered ISO 639-1 two-letter code. Matching is case-sensitive and
// performs no normalization: "EN", "eng", and " en" all fail.
var ErrUnrecognizedCode = errors.New("unrecognized ISO 639-1 language code")

// LanguageCode is one language of the ISO 639-1 standard. The underlying
// value is the canonical two-lowercase-letter code, so values are
// comparable, usable as map keys, and freely copyable.
type LanguageCode string

// Parse returns the LanguageCode matching an exact registered two-letter
// code. The returned error wraps ErrUnrecognizedCode and carries the
// rejected input as a goerr value under "code".
func Parse(code string) (LanguageCode, error) {
	c := LanguageCode(code)
	if _, ok := languages[c]; !ok {
		return "", goerr.Wrap(ErrUnrecognizedCode, "no such language code", goerr.V("code", code))
	}
	return c, nil
}

// Code returns the canonical two-letter code.
func (x LanguageCode) Code() string {
	return string(x)
}

func (x LanguageCode) String() string {
	return string(x)
}

// Name returns the English ISO language name, or "" for an unregistered
// value.
func (x LanguageCode) Name() string {
	return languages[x].name
}

// Family returns the ISO language family, or "" for an unregistered value.
func (x LanguageCode) Family() string {
	return languages[x].family
}

// Validate checks that the value is one of the registered codes.
func (x LanguageCode) Validate() error {
	if _, ok := languages[x]; !ok {
		return goerr.Wrap(ErrUnrecognizedCode, "invalid language code", goerr.V("code", string(x)))
	}
	return nil
}

// Tag returns the equivalent BCP 47 language tag.
func (x LanguageCode) Tag() language.Tag {
	return language.Make(string(x))
}
