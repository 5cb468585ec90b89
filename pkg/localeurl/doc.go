// Package localeurl generates localized variants of URLs.
//
// Two strategies are supported. The prefix strategy inserts or replaces a
// locale path segment at a configured position, recognizing an existing
// locale segment with the same pattern used by URL-prefix resolution. The
// domain strategy swaps the host through a locale-to-host map and leaves
// the URL untouched for unmapped locales.
//
// Malformed input is never an error: an unparsable URL is returned
// unchanged.
package localeurl
