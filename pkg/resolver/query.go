package resolver

import "net/http"

// Query resolves the locale from a named query-string parameter.
// An absent parameter or an empty value yields no candidate.
type Query struct {
	Param string
}

// ResolveAll implements Resolver.
func (q *Query) ResolveAll(r *http.Request) []string {
	if q.Param == "" {
		return nil
	}

	value := r.URL.Query().Get(q.Param)
	if value == "" {
		return nil
	}

	return []string{value}
}
