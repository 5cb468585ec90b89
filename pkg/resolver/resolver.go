package resolver

import "net/http"

// Well-known resolver names, used in resolution-order configuration and as
// registry keys.
const (
	NameSession    = "session"
	NameCookie     = "cookie"
	NameQuery      = "query"
	NameHeader     = "header"
	NameURLSegment = "url_segment"
	NameURLPrefix  = "url_prefix"
	NameDomain     = "domain"
)

// DefaultLocalePattern matches a two-letter language code with an optional
// two-letter region ("en", "en_US", "en-us"). It gates URL-prefix resolution
// so that ordinary path segments are not mistaken for locales, and is shared
// with localized URL generation.
const DefaultLocalePattern = `^[a-z]{2}([_-][A-Za-z]{2})?$`

// Resolver extracts locale candidates from a request, ordered by the
// resolver's own preference. An empty slice means the signal is absent.
type Resolver interface {
	ResolveAll(r *http.Request) []string
}

// First returns the first candidate of a resolver, if any.
func First(res Resolver, r *http.Request) (string, bool) {
	candidates := res.ResolveAll(r)
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}

// Factory constructs a resolver from the shared resolver configuration.
// A factory may return nil when its settings render the resolver inert;
// the manager skips nil resolvers.
type Factory func(cfg Config) Resolver

// Registry maps resolver names to factories. Configuration may override a
// factory per name to substitute a custom implementation while keeping the
// same chain position.
type Registry map[string]Factory

// DefaultRegistry returns a registry with all built-in resolvers.
func DefaultRegistry() Registry {
	return Registry{
		NameSession: func(cfg Config) Resolver {
			return &Session{Key: cfg.SessionKey, Reader: cfg.SessionReader}
		},
		NameCookie: func(cfg Config) Resolver {
			return &Cookie{Name: cfg.CookieName}
		},
		NameQuery: func(cfg Config) Resolver {
			return &Query{Param: cfg.QueryParam}
		},
		NameHeader: func(cfg Config) Resolver {
			return &Header{Name: cfg.HeaderName, UseQuality: cfg.HeaderUseQuality}
		},
		NameURLSegment: func(cfg Config) Resolver {
			return &URLSegment{Position: cfg.SegmentPosition}
		},
		NameURLPrefix: func(cfg Config) Resolver {
			return &URLPrefix{
				Position: cfg.SegmentPosition,
				Patterns: compilePatterns(cfg.SegmentPatterns),
			}
		},
		NameDomain: func(cfg Config) Resolver {
			return &Domain{
				Hosts:       cfg.DomainHosts,
				Strategies:  cfg.DomainStrategies,
				Position:    cfg.SubdomainPosition,
				Patterns:    compilePatterns(cfg.SubdomainPatterns),
				BaseDomains: cfg.BaseDomains,
			}
		},
	}
}
