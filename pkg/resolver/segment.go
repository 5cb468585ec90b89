package resolver

import (
	"net/http"
	"regexp"
	"strings"
)

// URLSegment resolves the locale from the path segment at a configured
// 1-based position. The segment is returned verbatim with no format
// validation; filtering false positives is the caller's responsibility
// (see URLPrefix for the validating variant). A non-positive position or a
// missing segment yields no candidate.
type URLSegment struct {
	Position int
}

// ResolveAll implements Resolver.
func (u *URLSegment) ResolveAll(r *http.Request) []string {
	segment, ok := pathSegment(r.URL.Path, u.Position)
	if !ok {
		return nil
	}
	return []string{segment}
}

// URLPrefix is the validating variant of URLSegment: the extracted segment
// is discarded unless it matches at least one of the configured patterns.
// This keeps ordinary path segments such as "dashboard" from being mistaken
// for a locale.
type URLPrefix struct {
	Position int
	Patterns []*regexp.Regexp
}

// ResolveAll implements Resolver.
func (u *URLPrefix) ResolveAll(r *http.Request) []string {
	segment, ok := pathSegment(r.URL.Path, u.Position)
	if !ok {
		return nil
	}

	if !matchesAny(u.Patterns, segment) {
		return nil
	}

	return []string{segment}
}

// pathSegment returns the non-empty path segment at a 1-based position.
func pathSegment(path string, position int) (string, bool) {
	if position <= 0 {
		return "", false
	}

	segments := splitPath(path)
	index := position - 1
	if index >= len(segments) {
		return "", false
	}

	return segments[index], true
}

// splitPath returns the non-empty segments of a URL path.
func splitPath(path string) []string {
	var segments []string
	for part := range strings.SplitSeq(path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
