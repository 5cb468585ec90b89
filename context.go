package lingua

import "context"

type localeContextKey struct{}

// WithLocale stores a resolved locale in the context. Used by the
// middleware; handlers read it back through LocaleFromContext or
// Service.CurrentLocale.
func WithLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, code)
}

// LocaleFromContext returns the locale stored in the context, if any.
func LocaleFromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(localeContextKey{}).(string)
	return code, ok && code != ""
}
