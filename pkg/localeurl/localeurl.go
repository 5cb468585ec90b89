package localeurl

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tooinfinity/lingua/pkg/resolver"
)

// URL localization strategies.
const (
	StrategyPrefix = "prefix"
	StrategyDomain = "domain"
)

// Option configures a Generator.
type Option func(*Generator)

// WithStrategy selects the localization strategy ("prefix" or "domain").
func WithStrategy(strategy string) Option {
	return func(g *Generator) {
		if strategy != "" {
			g.strategy = strategy
		}
	}
}

// WithPosition sets the 1-based path position of the locale segment for
// the prefix strategy.
func WithPosition(position int) Option {
	return func(g *Generator) {
		if position > 0 {
			g.position = position
		}
	}
}

// WithPatterns replaces the patterns used to recognize an existing locale
// segment. Patterns failing to compile are dropped.
func WithPatterns(patterns ...string) Option {
	return func(g *Generator) {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			if re, err := regexp.Compile(p); err == nil {
				compiled = append(compiled, re)
			}
		}
		if len(compiled) > 0 {
			g.patterns = compiled
		}
	}
}

// WithHosts sets the locale-to-host map for the domain strategy.
func WithHosts(hosts map[string]string) Option {
	return func(g *Generator) {
		g.hosts = hosts
	}
}

// Generator builds localized URLs under one configured strategy.
type Generator struct {
	strategy string
	position int
	patterns []*regexp.Regexp
	hosts    map[string]string
}

// New creates a Generator. Defaults: prefix strategy, position 1, the
// shared locale-segment pattern, no host map.
func New(opts ...Option) *Generator {
	g := &Generator{
		strategy: StrategyPrefix,
		position: 1,
		patterns: []*regexp.Regexp{regexp.MustCompile(resolver.DefaultLocalePattern)},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Localize returns the URL pointing at the given locale. Unparsable URLs
// and unmapped domain-strategy locales come back unchanged.
func (g *Generator) Localize(rawURL, locale string) string {
	switch g.strategy {
	case StrategyDomain:
		return g.localizeDomain(rawURL, locale)
	default:
		return g.localizePrefix(rawURL, locale)
	}
}

func (g *Generator) localizePrefix(rawURL, locale string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	segments := splitPath(u.Path)
	index := g.position - 1
	if index < 0 {
		return rawURL
	}

	switch {
	case index < len(segments) && matchesAny(g.patterns, segments[index]):
		// Existing locale segment gets replaced in place.
		segments[index] = locale
	case index <= len(segments):
		segments = append(segments[:index], append([]string{locale}, segments[index:]...)...)
	default:
		segments = append(segments, locale)
	}

	u.Path = "/" + strings.Join(segments, "/")
	return u.String()
}

func (g *Generator) localizeDomain(rawURL, locale string) string {
	host, ok := g.hosts[locale]
	if !ok || host == "" {
		// Fail-soft: an unmapped locale leaves the URL host unchanged.
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}

	if port := u.Port(); port != "" && !strings.Contains(host, ":") {
		host += ":" + port
	}
	u.Host = host

	return u.String()
}

func splitPath(path string) []string {
	var segments []string
	for part := range strings.SplitSeq(path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
