// Package resolver implements the locale resolution chain.
//
// Each resolver extracts zero or more locale candidates from one signal of
// an HTTP request: session storage, a cookie, a query parameter, an
// Accept-Language style header, a URL path segment (with an optional
// pattern-validated variant) or the request host. Resolvers are
// side-effect free and never write to the request.
//
// A Manager walks a configured, ordered, enable/disable-able chain of
// resolvers and returns the first normalized candidate accepted by the
// caller's support predicate. Resolver construction goes through a
// Registry of named factories so that any slot in the chain can be
// substituted with a custom implementation while keeping its position.
package resolver
