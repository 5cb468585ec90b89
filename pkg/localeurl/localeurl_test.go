package localeurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tooinfinity/lingua/pkg/localeurl"
)

func TestPrefixStrategy(t *testing.T) {
	t.Parallel()

	gen := localeurl.New()

	tests := []struct {
		name     string
		rawURL   string
		locale   string
		expected string
	}{
		{"insert into bare path", "/dashboard", "fr", "/fr/dashboard"},
		{"replace existing locale segment", "/en/dashboard", "fr", "/fr/dashboard"},
		{"replace locale with region", "/en_US/dashboard", "fr", "/fr/dashboard"},
		{"non-locale segment preserved", "/admin/users", "fr", "/fr/admin/users"},
		{"root path", "/", "fr", "/fr"},
		{"absolute url keeps host", "https://example.com/en/shop", "de", "https://example.com/de/shop"},
		{"query preserved", "/dashboard?tab=1", "fr", "/fr/dashboard?tab=1"},
		{"unparsable url unchanged", "http://%zz", "fr", "http://%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, gen.Localize(tt.rawURL, tt.locale))
		})
	}
}

func TestPrefixStrategyDeeperPosition(t *testing.T) {
	t.Parallel()

	gen := localeurl.New(localeurl.WithPosition(2))
	assert.Equal(t, "/app/fr/home", gen.Localize("/app/en/home", "fr"))
	assert.Equal(t, "/app/fr/home", gen.Localize("/app/home", "fr"))
}

func TestDomainStrategy(t *testing.T) {
	t.Parallel()

	gen := localeurl.New(
		localeurl.WithStrategy(localeurl.StrategyDomain),
		localeurl.WithHosts(map[string]string{
			"en": "example.com",
			"fr": "example.fr",
		}),
	)

	t.Run("mapped locale swaps host", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://example.fr/shop", gen.Localize("https://example.com/shop", "fr"))
	})

	t.Run("unmapped locale leaves host unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://example.com/shop", gen.Localize("https://example.com/shop", "es"))
	})

	t.Run("port preserved", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "http://example.fr:8080/x", gen.Localize("http://example.com:8080/x", "fr"))
	})

	t.Run("relative url unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/shop", gen.Localize("/shop", "fr"))
	})
}
