package resolver

import (
	"net/http"
	"regexp"
)

// SessionReader reads a value from the session bound to the request.
// The second return value reports whether the key was present.
type SessionReader func(r *http.Request, key string) (string, bool)

// Spec declares one position in the resolution order.
// A nil Enabled means enabled, so configurations predating the
// enable/disable feature keep working unchanged.
type Spec struct {
	Name    string
	Enabled *bool
}

// IsEnabled reports whether this entry's resolver should be consulted.
func (s Spec) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Config carries the settings of all built-in resolvers. It is read-only
// after the chain is built; factories copy what they need.
type Config struct {
	// Session resolver
	SessionKey    string
	SessionReader SessionReader

	// Cookie resolver
	CookieName string

	// Query resolver
	QueryParam string

	// Header resolver
	HeaderName       string
	HeaderUseQuality bool

	// URL-segment resolvers (shared by url_segment and url_prefix)
	SegmentPosition int
	SegmentPatterns []string

	// Domain resolver
	DomainHosts       map[string]string
	DomainStrategies  []string
	SubdomainPosition int
	SubdomainPatterns []string
	BaseDomains       []string
}

// DefaultConfig returns resolver settings matching the documented defaults.
func DefaultConfig() Config {
	return Config{
		SessionKey:        "locale",
		CookieName:        "locale",
		QueryParam:        "locale",
		HeaderName:        "Accept-Language",
		HeaderUseQuality:  true,
		SegmentPosition:   1,
		SegmentPatterns:   []string{DefaultLocalePattern},
		DomainStrategies:  []string{StrategyFull, StrategySubdomain},
		SubdomainPosition: 1,
		SubdomainPatterns: []string{DefaultLocalePattern},
	}
}

// compilePatterns compiles pattern strings, dropping any that fail to
// compile so that one bad configured pattern cannot take the chain down.
func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
