package lingua

import "net/http"

// Middleware resolves the locale once per request and stores it in the
// request context, where CurrentLocale and LocaleFromContext read it back.
// It never rejects a request: a resolution miss yields the default locale.
func (s *Service) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), s.Resolve(r))))
		})
	}
}
