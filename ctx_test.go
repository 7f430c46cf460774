package iso639_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/iso639"
)

func TestContext(t *testing.T) {
	t.Run("carries the language code", func(t *testing.T) {
		ctx := iso639.With(context.Background(), iso639.Ukrainian)
		gt.Equal(t, iso639.From(ctx), iso639.Ukrainian)
	})

	t.Run("falls back to default", func(t *testing.T) {
		gt.Equal(t, iso639.From(context.Background()), iso639.Default)
		gt.Equal(t, iso639.Default, iso639.English)
	})

	t.Run("latest value wins", func(t *testing.T) {
		ctx := iso639.With(context.Background(), iso639.German)
		ctx = iso639.With(ctx, iso639.Spanish)
		gt.Equal(t, iso639.From(ctx), iso639.Spanish)
	})
}
