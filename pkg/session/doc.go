// Package session provides a small cookie-token session backend used as
// the default locale persistence layer.
//
// A Manager reads the session token from a request cookie, lazily creating
// one on first write, and stores string key-value data in a Store. The
// included MemoryStore keeps sessions in process memory with TTL-based
// expiry and periodic cleanup; any external store can be substituted by
// implementing the Store interface.
package session
