package translation

import (
	"strings"
	"unicode"
)

// PageResolverFunc maps a page or view identifier to an ordered list of
// translation group names. A custom resolver configured on the service
// replaces the default algorithm entirely.
type PageResolverFunc func(pageID string) []string

// ResolvePageGroups is the default page-to-group mapping.
//
// Path separators are normalized, a leading "Pages/" prefix is stripped
// case-insensitively and the identifier is split into non-empty segments.
// A single segment maps to its kebab-case form. With multiple segments the
// final one (the view name: Index, Show, Edit and the like) is dropped and
// the remaining kebab-case segments are joined with "-":
//
//	"Pages/Users/Index" -> ["users"]
//	"Admin/Users/Index" -> ["admin-users"]
//	"Admin/Dashboard"   -> ["admin"]
//	""                  -> []
func ResolvePageGroups(pageID string) []string {
	normalized := strings.ReplaceAll(pageID, `\`, "/")

	if len(normalized) >= 6 && strings.EqualFold(normalized[:6], "pages/") {
		normalized = normalized[6:]
	}

	var segments []string
	for part := range strings.SplitSeq(normalized, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}

	switch len(segments) {
	case 0:
		return nil
	case 1:
		return []string{kebab(segments[0])}
	}

	segments = segments[:len(segments)-1]
	parts := make([]string, len(segments))
	for i, segment := range segments {
		parts[i] = kebab(segment)
	}
	return []string{strings.Join(parts, "-")}
}

// kebab converts PascalCase and camelCase identifiers to kebab-case:
// "UserProfile" -> "user-profile", "APIToken" -> "api-token".
func kebab(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
