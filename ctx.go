package iso639

import "context"

// Default is the language assumed when a context carries none.
const Default = English

type ctxKey struct{}

// With returns a context carrying the given language code.
func With(ctx context.Context, code LanguageCode) context.Context {
	return context.WithValue(ctx, ctxKey{}, code)
}

// From returns the language code carried by the context, or Default.
func From(ctx context.Context) LanguageCode {
	code, ok := ctx.Value(ctxKey{}).(LanguageCode)
	if !ok {
		return Default
	}
	return code
}
