package resolver

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// maxHeaderLength caps Accept-Language parsing; anything beyond is ignored.
const maxHeaderLength = 4096

// Header resolves locale candidates from an Accept-Language style header.
//
// With UseQuality set, candidates are ordered by their quality value
// descending; ties keep the original header order. Without it, candidates
// keep the header order and any ";q=..." suffix is simply stripped.
type Header struct {
	Name       string
	UseQuality bool
}

type taggedQuality struct {
	tag string
	q   float64
}

// ResolveAll implements Resolver.
func (h *Header) ResolveAll(r *http.Request) []string {
	name := h.Name
	if name == "" {
		name = "Accept-Language"
	}

	raw := r.Header.Get(name)
	if raw == "" {
		return nil
	}
	if len(raw) > maxHeaderLength {
		raw = raw[:maxHeaderLength]
	}

	tagged := parseHeader(raw)
	if len(tagged) == 0 {
		return nil
	}

	if h.UseQuality {
		// Stable sort keeps header order among equal qualities.
		slices.SortStableFunc(tagged, func(a, b taggedQuality) int {
			return cmp.Compare(b.q, a.q)
		})
	}

	candidates := make([]string, len(tagged))
	for i, tq := range tagged {
		candidates[i] = tq.tag
	}
	return candidates
}

// parseHeader splits a header into (tag, quality) pairs. Quality defaults
// to 1.0, is clamped to [0, 1], and unparsable values parse to 0.0.
// Malformed segments (blank tag before a ";", stray commas) are skipped so
// they never surface as empty-string candidates.
func parseHeader(raw string) []taggedQuality {
	var tagged []taggedQuality

	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tagPart, qualityPart, hasQuality := strings.Cut(part, ";")
		tag := strings.TrimSpace(tagPart)
		if tag == "" {
			continue
		}

		q := 1.0
		if hasQuality {
			q = parseQuality(qualityPart)
		}

		tagged = append(tagged, taggedQuality{tag: tag, q: q})
	}

	return tagged
}

// parseQuality parses a "q=..." parameter, clamping to [0, 1] and treating
// anything unparsable as 0.0.
func parseQuality(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "q=")
	s = strings.TrimPrefix(s, "Q=")

	q, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return min(max(q, 0.0), 1.0)
}
