package translation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tooinfinity/lingua/pkg/translation"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("current wins and missing keys filled", func(t *testing.T) {
		t.Parallel()
		current := translation.Group{"login": "Connexion"}
		fallback := translation.Group{"login": "Login", "logout": "Logout"}

		merged := translation.Merge(current, fallback)
		assert.Equal(t, translation.Group{"login": "Connexion", "logout": "Logout"}, merged)
	})

	t.Run("nested maps merged recursively", func(t *testing.T) {
		t.Parallel()
		current := translation.Group{
			"auth": map[string]any{"login": "Connexion"},
		}
		fallback := translation.Group{
			"auth":  map[string]any{"login": "Login", "logout": "Logout"},
			"title": "App",
		}

		merged := translation.Merge(current, fallback)
		assert.Equal(t, translation.Group{
			"auth":  map[string]any{"login": "Connexion", "logout": "Logout"},
			"title": "App",
		}, merged)
	})

	t.Run("type conflict keeps current", func(t *testing.T) {
		t.Parallel()
		current := translation.Group{"auth": "flat"}
		fallback := translation.Group{"auth": map[string]any{"login": "Login"}}

		merged := translation.Merge(current, fallback)
		assert.Equal(t, "flat", merged["auth"])
	})

	t.Run("empty current returns fallback", func(t *testing.T) {
		t.Parallel()
		fallback := translation.Group{"a": "b"}
		assert.Equal(t, fallback, translation.Merge(translation.Group{}, fallback))
	})

	t.Run("empty fallback returns current", func(t *testing.T) {
		t.Parallel()
		current := translation.Group{"a": "b"}
		assert.Equal(t, current, translation.Merge(current, translation.Group{}))
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		t.Parallel()
		current := translation.Group{"a": "1"}
		fallback := translation.Group{"b": "2"}

		_ = translation.Merge(current, fallback)
		assert.Equal(t, translation.Group{"a": "1"}, current)
		assert.Equal(t, translation.Group{"b": "2"}, fallback)
	})
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()

	cache := translation.NewCache()
	data := translation.Group{"hello": "bonjour"}

	cache.Put("fr", "messages", data)
	assert.True(t, cache.Has("fr", "messages"))

	got, ok := cache.Get("fr", "messages")
	assert.True(t, ok)
	assert.Equal(t, data, got)

	cache.Forget("fr", "messages")
	_, ok = cache.Get("fr", "messages")
	assert.False(t, ok)
	assert.False(t, cache.Has("fr", "messages"))
}

func TestCacheLocaleScoping(t *testing.T) {
	t.Parallel()

	cache := translation.NewCache()
	cache.Put("fr", "messages", translation.Group{"k": "fr"})
	cache.Put("fr", "auth", translation.Group{"k": "fr"})
	cache.Put("de", "messages", translation.Group{"k": "de"})

	all := cache.AllForLocale("fr")
	assert.Len(t, all, 2)
	assert.Contains(t, all, "messages")
	assert.Contains(t, all, "auth")

	cache.FlushLocale("fr")
	assert.False(t, cache.Has("fr", "messages"))
	assert.True(t, cache.Has("de", "messages"))

	cache.Flush()
	assert.Zero(t, cache.Len())
}

func TestCachePutOverwrites(t *testing.T) {
	t.Parallel()

	cache := translation.NewCache()
	cache.Put("fr", "messages", translation.Group{"v": "1"})
	cache.Put("fr", "messages", translation.Group{"v": "2"})

	got, ok := cache.Get("fr", "messages")
	assert.True(t, ok)
	assert.Equal(t, translation.Group{"v": "2"}, got)
}
