// Package translation loads, merges and caches translation data.
//
// Translations are organized as named groups: one nested string mapping per
// (locale, group) pair. Two filesystem drivers are provided: a group driver
// reading <path>/<locale>/<group>.{json,yaml,yml}, and a single-file driver
// reading one flat <path>/<locale>.json mapping per locale.
//
// Missing or malformed sources never fail: they yield empty groups so that
// fallback merging and aggregate callers proceed without special cases.
//
// Caching is two-tiered: a mutex-guarded in-process cache keyed by
// (locale, group), and an optional TTL-bound persistent tier behind the
// Store interface with a Redis implementation included. The in-memory tier
// is always consulted before the persistent tier, and the persistent tier
// before the filesystem.
package translation
