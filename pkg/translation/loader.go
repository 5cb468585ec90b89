package translation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// groupExtensions lists recognized group-file extensions in lookup order.
var groupExtensions = []string{"json", "yaml", "yml"}

// GroupLoader is the per-group filesystem driver. Each group lives in its
// own file at <path>/<locale>/<group>.{json,yaml,yml}. Missing files and
// files that do not parse into a mapping yield empty groups.
type GroupLoader struct {
	path string
}

// NewGroupLoader creates a group driver rooted at path.
func NewGroupLoader(path string) *GroupLoader {
	return &GroupLoader{path: path}
}

// LoadGroup reads one named group for a locale.
func (l *GroupLoader) LoadGroup(locale, group string) Group {
	for _, ext := range groupExtensions {
		content, err := os.ReadFile(filepath.Join(l.path, locale, group+"."+ext))
		if err != nil {
			continue
		}
		return parseGroup(content, ext)
	}
	return Group{}
}

// Groups lists the group names discoverable for a locale, sorted lexically
// and deduplicated. A locale without a translation directory yields an
// empty list.
func (l *GroupLoader) Groups(locale string) []string {
	entries, err := os.ReadDir(filepath.Join(l.path, locale))
	if err != nil {
		return nil
	}

	var groups []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		if !slices.Contains(groupExtensions, strings.ToLower(ext)) {
			continue
		}

		group := strings.TrimSuffix(name, filepath.Ext(name))
		if group != "" && !slices.Contains(groups, group) {
			groups = append(groups, group)
		}
	}

	slices.Sort(groups)
	return groups
}

// LoadAll reads every discoverable group for a locale.
func (l *GroupLoader) LoadAll(locale string) map[string]Group {
	all := make(map[string]Group)
	for _, group := range l.Groups(locale) {
		all[group] = l.LoadGroup(locale, group)
	}
	return all
}

// JSONLoader is the single-file driver: one flat <path>/<locale>.json
// mapping per locale. Missing or malformed files yield empty groups.
type JSONLoader struct {
	path string
}

// NewJSONLoader creates a single-file JSON driver rooted at path.
func NewJSONLoader(path string) *JSONLoader {
	return &JSONLoader{path: path}
}

// LoadLocale reads the whole mapping for a locale.
func (l *JSONLoader) LoadLocale(locale string) Group {
	content, err := os.ReadFile(filepath.Join(l.path, locale+".json"))
	if err != nil {
		return Group{}
	}
	return parseGroup(content, "json")
}

// parseGroup decodes file content into a mapping. Content that fails to
// parse, or parses to something other than a mapping, is treated as no
// data: a third-party-edited translation file must not crash the caller.
func parseGroup(content []byte, ext string) Group {
	var data map[string]any

	switch strings.ToLower(ext) {
	case "json":
		if err := json.Unmarshal(content, &data); err != nil {
			return Group{}
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return Group{}
		}
	default:
		return Group{}
	}

	if data == nil {
		return Group{}
	}
	return data
}
