// Package locale provides canonicalization helpers for locale codes.
//
// A canonical locale code is either a bare language ("en") or a
// language_REGION pair ("en_US") with the language lowercased, the region
// uppercased and an underscore separator. Raw external input such as
// "en-us", "EN_US" or "  fr " is untrusted until passed through Normalize.
//
// The package also answers text-direction questions (IsRTL, Direction) from
// a configurable right-to-left language set, and resolves human-readable
// locale names via golang.org/x/text.
package locale
