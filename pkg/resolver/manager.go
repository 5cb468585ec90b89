package resolver

import "net/http"

type chainEntry struct {
	name     string
	enabled  bool
	resolver Resolver
}

// Manager holds the configured, ordered resolver chain and orchestrates
// candidate extraction, normalization and the support check.
type Manager struct {
	entries []chainEntry
}

// NewManager builds a chain from the resolution order, the registry and the
// shared resolver configuration. Order entries whose name is absent from
// the registry, or whose factory returns nil, stay in the chain but are
// skipped during resolution. Duplicate names are allowed but redundant.
func NewManager(order []Spec, registry Registry, cfg Config) *Manager {
	if registry == nil {
		registry = DefaultRegistry()
	}

	entries := make([]chainEntry, 0, len(order))
	for _, spec := range order {
		entry := chainEntry{name: spec.Name, enabled: spec.IsEnabled()}
		if factory, ok := registry[spec.Name]; ok && factory != nil {
			entry.resolver = factory(cfg)
		}
		entries = append(entries, entry)
	}

	return &Manager{entries: entries}
}

// Resolve walks the chain in order, skipping disabled and unknown
// resolvers, and returns the first normalized candidate that satisfies
// isSupported. Empty candidates are skipped. A nil normalize is treated as
// identity. Returns ("", false) when no resolver yields a supported
// candidate; the caller applies its default locale.
func (m *Manager) Resolve(r *http.Request, isSupported func(string) bool, normalize func(string) string) (string, bool) {
	if normalize == nil {
		normalize = func(s string) string { return s }
	}

	for _, entry := range m.entries {
		if !entry.enabled || entry.resolver == nil {
			continue
		}

		for _, candidate := range entry.resolver.ResolveAll(r) {
			if candidate == "" {
				continue
			}

			normalized := normalize(candidate)
			if isSupported == nil || isSupported(normalized) {
				return normalized, true
			}
		}
	}

	return "", false
}

// Names returns the chain's resolver names in order, for introspection and
// logging.
func (m *Manager) Names() []string {
	names := make([]string, len(m.entries))
	for i, entry := range m.entries {
		names[i] = entry.name
	}
	return names
}
