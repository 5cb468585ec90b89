package locale

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DirectionLTR and DirectionRTL are the two possible text directions.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// DefaultRTLLanguages lists base languages written right-to-left.
// Used by IsRTL/Direction when the caller does not supply its own set.
var DefaultRTLLanguages = []string{
	"ar", "ckb", "dv", "fa", "he", "ks", "ps", "sd", "ug", "ur", "yi",
}

// Normalize converts a raw locale string into canonical form.
//
// The input is trimmed and hyphens are replaced with underscores. If the
// result contains an underscore it is split at the first one: the language
// part is lowercased and the region part is uppercased as a whole (a region
// containing further separators is never re-split). Otherwise the whole
// string is lowercased.
//
// Normalize never fails; validity against a supported set is a separate
// concern. It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	code := strings.ReplaceAll(strings.TrimSpace(raw), "-", "_")

	if lang, region, ok := strings.Cut(code, "_"); ok {
		return strings.ToLower(lang) + "_" + strings.ToUpper(region)
	}

	return strings.ToLower(code)
}

// Base returns the base language of a locale code: the normalized part
// before any region separator. Base("en-US") == "en".
func Base(code string) string {
	normalized := Normalize(code)
	if lang, _, ok := strings.Cut(normalized, "_"); ok {
		return lang
	}
	return normalized
}

// IsRTL reports whether the base language of code belongs to the given
// right-to-left set. A nil set falls back to DefaultRTLLanguages.
func IsRTL(code string, rtl []string) bool {
	if rtl == nil {
		rtl = DefaultRTLLanguages
	}

	base := Base(code)
	return slices.ContainsFunc(rtl, func(lang string) bool {
		return Base(lang) == base
	})
}

// Direction returns "rtl" or "ltr" for the given locale code.
func Direction(code string, rtl []string) string {
	if IsRTL(code, rtl) {
		return DirectionRTL
	}
	return DirectionLTR
}

// DisplayName returns the name of the locale written in the language
// identified by in, e.g. DisplayName("fr", "en") == "French".
// An unparsable code is returned unchanged.
func DisplayName(code, in string) string {
	tag, err := language.Parse(bcp47(code))
	if err != nil {
		return code
	}

	inTag, err := language.Parse(bcp47(in))
	if err != nil {
		inTag = language.English
	}

	name := display.Languages(inTag).Name(tag)
	if name == "" {
		return code
	}
	return name
}

// NativeName returns the name of the locale written in that locale itself,
// e.g. NativeName("de") == "Deutsch". An unparsable code is returned
// unchanged.
func NativeName(code string) string {
	tag, err := language.Parse(bcp47(code))
	if err != nil {
		return code
	}

	name := display.Self.Name(tag)
	if name == "" {
		return code
	}
	return name
}

// bcp47 converts a canonical code back to the hyphenated form expected by
// golang.org/x/text.
func bcp47(code string) string {
	return strings.ReplaceAll(Normalize(code), "_", "-")
}
