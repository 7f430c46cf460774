package iso639_test

import (
	"regexp"
	"slices"
	"testing"

	"github.com/secmon-lab/iso639"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	all := iso639.All()
	require.Len(t, all, 184)

	wellFormed := regexp.MustCompile(`^[a-z]{2}$`)
	seen := make(map[string]iso639.LanguageCode, len(all))
	for _, code := range all {
		require.Regexp(t, wellFormed, code.Code())
		prev, dup := seen[code.Code()]
		require.Falsef(t, dup, "code %q assigned to both %q and %q", code.Code(), prev.Name(), code.Name())
		seen[code.Code()] = code

		require.NotEmpty(t, code.Name(), "name missing for %q", code.Code())
		require.NotEmpty(t, code.Family(), "family missing for %q", code.Code())
		require.NoError(t, code.Validate())

		parsed, err := iso639.Parse(code.Code())
		require.NoError(t, err)
		require.Equal(t, code, parsed, "round trip broke for %q", code.Code())
	}

	codes := iso639.Codes()
	require.True(t, slices.IsSorted(codes))
	require.Len(t, codes, len(all))
	for i, code := range all {
		require.Equal(t, code.Code(), codes[i])
	}

	for _, known := range []string{"en", "fr", "zh", "sw", "hi", "ar"} {
		require.Contains(t, codes, known)
	}
}
