package lingua_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooinfinity/lingua"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := lingua.DefaultConfig()

	assert.Equal(t, []string{"en"}, cfg.SupportedLocales)
	assert.Equal(t, lingua.DriverGroup, cfg.Driver)
	assert.Equal(t, "./lang", cfg.TranslationsPath)
	assert.Equal(t, []string{"session", "cookie"}, cfg.ResolutionOrder)
	assert.Equal(t, "locale", cfg.SessionKey)
	assert.Equal(t, "locale", cfg.ResolverSessionKey)
	assert.Equal(t, "locale", cfg.CookieName)
	assert.True(t, cfg.CookiePersist)
	assert.Equal(t, "Accept-Language", cfg.HeaderName)
	assert.Equal(t, 1, cfg.SegmentPosition)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, "prefix", cfg.URLStrategy)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("LINGUA_SUPPORTED_LOCALES", "en,fr,pt_BR")
	t.Setenv("LINGUA_DEFAULT_LOCALE", "fr")
	t.Setenv("LINGUA_RESOLUTION_ORDER", "query,header,cookie")
	t.Setenv("LINGUA_COOKIE_TTL", "1h")
	t.Setenv("LINGUA_DOMAIN_HOSTS", "example.fr=fr,example.com=en")
	t.Setenv("LINGUA_HEADER_USE_QUALITY", "false")

	cfg, err := lingua.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "fr", "pt_BR"}, cfg.SupportedLocales)
	assert.Equal(t, "fr", cfg.DefaultLocale)
	assert.Equal(t, []string{"query", "header", "cookie"}, cfg.ResolutionOrder)
	assert.Equal(t, time.Hour, cfg.CookieTTL)
	assert.Equal(t, map[string]string{"example.fr": "fr", "example.com": "en"}, cfg.DomainHosts)
	assert.False(t, cfg.HeaderUseQuality)
	assert.True(t, cfg.CookiePersist)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("LINGUA_COOKIE_TTL", "not-a-duration")

	_, err := lingua.LoadConfig()
	require.ErrorIs(t, err, lingua.ErrParsingConfig)
}
