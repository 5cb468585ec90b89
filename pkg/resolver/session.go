package resolver

import "net/http"

// Session resolves the locale from session storage via a configured key.
// Yields at most one candidate. With no reader wired the resolver is inert.
type Session struct {
	Key    string
	Reader SessionReader
}

// ResolveAll implements Resolver.
func (s *Session) ResolveAll(r *http.Request) []string {
	if s.Reader == nil || s.Key == "" {
		return nil
	}

	value, ok := s.Reader(r, s.Key)
	if !ok || value == "" {
		return nil
	}

	return []string{value}
}
