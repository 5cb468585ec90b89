package resolver

import "net/http"

// Cookie resolves the locale from a named request cookie.
// An absent cookie or an empty value yields no candidate.
type Cookie struct {
	Name string
}

// ResolveAll implements Resolver.
func (c *Cookie) ResolveAll(r *http.Request) []string {
	if c.Name == "" {
		return nil
	}

	cookie, err := r.Cookie(c.Name)
	if err != nil || cookie.Value == "" {
		return nil
	}

	return []string{cookie.Value}
}
