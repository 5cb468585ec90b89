package translation

// Group is a named bundle of translation strings for one locale. Values are
// strings or nested mappings. A group is treated as immutable once loaded;
// cache invalidation reloads rather than mutates.
type Group = map[string]any

// Merge fills gaps in current with data from fallback. Values present in
// current always win; keys absent from current are copied from fallback.
// When both sides hold a nested mapping under the same key, the mappings
// are merged recursively.
func Merge(current, fallback Group) Group {
	if len(fallback) == 0 {
		return cloneGroup(current)
	}
	if len(current) == 0 {
		return cloneGroup(fallback)
	}

	merged := make(Group, len(current)+len(fallback))
	for key, value := range fallback {
		merged[key] = value
	}

	for key, value := range current {
		currentMap, currentIsMap := value.(map[string]any)
		fallbackMap, fallbackIsMap := merged[key].(map[string]any)
		if currentIsMap && fallbackIsMap {
			merged[key] = Merge(currentMap, fallbackMap)
			continue
		}
		merged[key] = value
	}

	return merged
}

func cloneGroup(g Group) Group {
	clone := make(Group, len(g))
	for key, value := range g {
		clone[key] = value
	}
	return clone
}
