package iso639_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/iso639"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		code, err := iso639.Parse("en")
		gt.NoError(t, err)
		gt.Equal(t, code, iso639.English)
		gt.Equal(t, code.Code(), "en")
	})

	t.Run("french", func(t *testing.T) {
		code, err := iso639.Parse("fr")
		gt.NoError(t, err)
		gt.Equal(t, code, iso639.French)
	})

	t.Run("chinese", func(t *testing.T) {
		code, err := iso639.Parse("zh")
		gt.NoError(t, err)
		gt.Equal(t, code, iso639.Chinese)
	})

	t.Run("uppercase is rejected", func(t *testing.T) {
		_, err := iso639.Parse("EN")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, iso639.ErrUnrecognizedCode))
	})

	t.Run("mixed case is rejected", func(t *testing.T) {
		_, err := iso639.Parse("aE")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, iso639.ErrUnrecognizedCode))
	})

	t.Run("three letter code is rejected", func(t *testing.T) {
		_, err := iso639.Parse("eng")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, iso639.ErrUnrecognizedCode))
	})

	t.Run("empty string is rejected", func(t *testing.T) {
		_, err := iso639.Parse("")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, iso639.ErrUnrecognizedCode))
	})

	t.Run("whitespace is not trimmed", func(t *testing.T) {
		_, err := iso639.Parse(" en")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, iso639.ErrUnrecognizedCode))
	})

	t.Run("unassigned combination is rejected", func(t *testing.T) {
		_, err := iso639.Parse("zz")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, iso639.ErrUnrecognizedCode))
	})

	t.Run("rejected input is attached to the error", func(t *testing.T) {
		_, err := iso639.Parse("EN")
		gt.Error(t, err)
		gt.Equal(t, goerr.Values(err)["code"], "EN")
	})
}

func TestLanguageCodeValidate(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		gt.NoError(t, iso639.Japanese.Validate())
	})

	t.Run("zero value", func(t *testing.T) {
		var code iso639.LanguageCode
		err := code.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, iso639.ErrUnrecognizedCode))
	})

	t.Run("arbitrary value", func(t *testing.T) {
		err := iso639.LanguageCode("xx").Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid language code")
	})
}

func TestMetadata(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		gt.Equal(t, iso639.Avestan.Name(), "Avestan")
		gt.Equal(t, iso639.Chinese.Name(), "Chinese")
		gt.Equal(t, iso639.Sango.Name(), "Sango")
		gt.Equal(t, iso639.Czech.Name(), "Czech")
	})

	t.Run("families", func(t *testing.T) {
		gt.Equal(t, iso639.Avestan.Family(), "Indo-European")
		gt.Equal(t, iso639.Chinese.Family(), "Sino-Tibetan")
		gt.Equal(t, iso639.Sango.Family(), "Creole")
		gt.Equal(t, iso639.Kazakh.Family(), "Turkic")
		gt.Equal(t, iso639.Volapuk.Family(), "Constructed")
	})

	t.Run("unregistered value has no metadata", func(t *testing.T) {
		gt.Equal(t, iso639.LanguageCode("xx").Name(), "")
		gt.Equal(t, iso639.LanguageCode("xx").Family(), "")
	})
}

func TestFormatting(t *testing.T) {
	gt.Equal(t, iso639.English.String(), "en")
	gt.Equal(t, fmt.Sprintf("%s", iso639.Welsh), "cy")
}

func TestTag(t *testing.T) {
	gt.Equal(t, iso639.English.Tag(), language.English)
	gt.Equal(t, iso639.Japanese.Tag(), language.Japanese)
}
