package resolver

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

// Domain resolution strategies.
const (
	StrategyFull      = "full"
	StrategySubdomain = "subdomain"
)

// minSubdomainLabels is the smallest label count for which a subdomain can
// exist at all ("fr.example.com").
const minSubdomainLabels = 3

// Domain resolves the locale from the request host.
//
// Strategies run in the configured order; the first one yielding a result
// wins. "full" looks the exact host up in the Hosts map. "subdomain"
// extracts the label at a 1-based position from the left, gated by a
// minimum label count, an optional base-domain allow-list (suffix match)
// and a pattern set for the extracted label.
type Domain struct {
	Hosts       map[string]string
	Strategies  []string
	Position    int
	Patterns    []*regexp.Regexp
	BaseDomains []string
}

// ResolveAll implements Resolver.
func (d *Domain) ResolveAll(r *http.Request) []string {
	host := requestHost(r)
	if host == "" {
		return nil
	}

	strategies := d.Strategies
	if len(strategies) == 0 {
		strategies = []string{StrategyFull, StrategySubdomain}
	}

	for _, strategy := range strategies {
		switch strategy {
		case StrategyFull:
			if code, ok := d.Hosts[host]; ok && code != "" {
				return []string{code}
			}
		case StrategySubdomain:
			if label, ok := d.subdomainLabel(host); ok {
				return []string{label}
			}
		}
	}

	return nil
}

func (d *Domain) subdomainLabel(host string) (string, bool) {
	if d.Position <= 0 {
		return "", false
	}

	labels := strings.Split(host, ".")
	if len(labels) < minSubdomainLabels {
		return "", false
	}

	if len(d.BaseDomains) > 0 && !d.allowedBase(host) {
		return "", false
	}

	index := d.Position - 1
	if index >= len(labels) {
		return "", false
	}

	label := labels[index]
	if label == "" || !matchesAny(d.Patterns, label) {
		return "", false
	}

	return label, true
}

func (d *Domain) allowedBase(host string) bool {
	for _, base := range d.BaseDomains {
		if base != "" && strings.HasSuffix(host, base) {
			return true
		}
	}
	return false
}

// requestHost returns the request host lowercased and without any port.
func requestHost(r *http.Request) string {
	host := r.Host
	if host == "" {
		host = r.URL.Host
	}

	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	return strings.ToLower(host)
}
