package lingua

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Translation drivers.
const (
	DriverGroup = "group"
	DriverJSON  = "json"
)

// defaultSessionKey is the out-of-the-box value of both session key
// settings; the legacy precedence rule in sessionKey() compares against it.
const defaultSessionKey = "locale"

// ErrParsingConfig wraps environment parsing failures.
var ErrParsingConfig = errors.New("lingua: failed to parse config")

// Config is the full configuration surface of the locale service. All
// values are read-only after New; the resolver chain and loaders copy what
// they need.
type Config struct {
	SupportedLocales []string `env:"LINGUA_SUPPORTED_LOCALES" envSeparator:"," envDefault:"en"`
	// DefaultLocale empty means "use the first supported locale".
	DefaultLocale    string `env:"LINGUA_DEFAULT_LOCALE" envDefault:""`
	Driver           string `env:"LINGUA_DRIVER" envDefault:"group"`
	TranslationsPath string `env:"LINGUA_TRANSLATIONS_PATH" envDefault:"./lang"`

	// ResolutionOrder names the resolvers consulted for requests, first
	// match wins. DisabledResolvers turns named resolvers off without
	// removing them from the order.
	ResolutionOrder   []string `env:"LINGUA_RESOLUTION_ORDER" envSeparator:"," envDefault:"session,cookie"`
	DisabledResolvers []string `env:"LINGUA_DISABLED_RESOLVERS" envSeparator:","`

	// SessionKey is the legacy single session key; ResolverSessionKey is
	// its structured replacement. See Service.sessionKey for the
	// migration precedence rule.
	SessionKey         string `env:"LINGUA_SESSION_KEY" envDefault:"locale"`
	ResolverSessionKey string `env:"LINGUA_RESOLVER_SESSION_KEY" envDefault:"locale"`

	CookieName    string        `env:"LINGUA_COOKIE_NAME" envDefault:"locale"`
	CookieTTL     time.Duration `env:"LINGUA_COOKIE_TTL" envDefault:"8760h"`
	CookiePersist bool          `env:"LINGUA_COOKIE_PERSIST" envDefault:"true"`

	QueryParam       string `env:"LINGUA_QUERY_PARAM" envDefault:"locale"`
	HeaderName       string `env:"LINGUA_HEADER_NAME" envDefault:"Accept-Language"`
	HeaderUseQuality bool   `env:"LINGUA_HEADER_USE_QUALITY" envDefault:"true"`

	SegmentPosition int      `env:"LINGUA_URL_SEGMENT_POSITION" envDefault:"1"`
	SegmentPatterns []string `env:"LINGUA_URL_SEGMENT_PATTERNS" envSeparator:","`

	// DomainHosts maps request hosts to locales ("example.fr=fr").
	DomainHosts       map[string]string `env:"LINGUA_DOMAIN_HOSTS" envSeparator:"," envKeyValSeparator:"="`
	DomainStrategies  []string          `env:"LINGUA_DOMAIN_STRATEGIES" envSeparator:"," envDefault:"full,subdomain"`
	SubdomainPosition int               `env:"LINGUA_SUBDOMAIN_POSITION" envDefault:"1"`
	SubdomainPatterns []string          `env:"LINGUA_SUBDOMAIN_PATTERNS" envSeparator:","`
	BaseDomains       []string          `env:"LINGUA_BASE_DOMAINS" envSeparator:","`

	// LazyLoading restricts Translations to DefaultGroups instead of
	// every group of the locale.
	LazyLoading   bool     `env:"LINGUA_LAZY_LOADING" envDefault:"false"`
	DefaultGroups []string `env:"LINGUA_DEFAULT_GROUPS" envSeparator:","`

	// Persistent translation-cache tier. CacheEnabled plus a RedisURL
	// connects the Redis store at New; WithPersistentStore overrides both.
	CacheEnabled   bool          `env:"LINGUA_PERSISTENT_CACHE" envDefault:"false"`
	CacheTTL       time.Duration `env:"LINGUA_PERSISTENT_CACHE_TTL" envDefault:"24h"`
	CacheKeyPrefix string        `env:"LINGUA_PERSISTENT_CACHE_PREFIX" envDefault:"lingua:translations:"`
	RedisURL       string        `env:"LINGUA_REDIS_URL"`

	// RTLLanguages overrides the built-in right-to-left language set.
	RTLLanguages []string `env:"LINGUA_RTL_LANGUAGES" envSeparator:","`

	// Localized URL generation.
	URLStrategy       string `env:"LINGUA_URL_STRATEGY" envDefault:"prefix"`
	URLPrefixPosition int    `env:"LINGUA_URL_PREFIX_POSITION" envDefault:"1"`
	// URLHosts maps locales to hosts for the domain strategy ("fr=example.fr").
	URLHosts map[string]string `env:"LINGUA_URL_HOSTS" envSeparator:"," envKeyValSeparator:"="`
}

// DefaultConfig returns the documented defaults, matching the env tags.
func DefaultConfig() Config {
	return Config{
		SupportedLocales:   []string{"en"},
		Driver:             DriverGroup,
		TranslationsPath:   "./lang",
		ResolutionOrder:    []string{"session", "cookie"},
		SessionKey:         defaultSessionKey,
		ResolverSessionKey: defaultSessionKey,
		CookieName:         "locale",
		CookieTTL:          8760 * time.Hour,
		CookiePersist:      true,
		QueryParam:         "locale",
		HeaderName:         "Accept-Language",
		HeaderUseQuality:   true,
		SegmentPosition:    1,
		DomainStrategies:   []string{"full", "subdomain"},
		SubdomainPosition:  1,
		CacheTTL:           24 * time.Hour,
		CacheKeyPrefix:     "lingua:translations:",
		URLStrategy:        "prefix",
		URLPrefixPosition:  1,
	}
}

var dotenvOnce sync.Once

// LoadConfig reads the configuration from environment variables, loading a
// .env file first when one exists.
func LoadConfig() (Config, error) {
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// withDefaults fills zero values so that a partially populated Config
// behaves like DefaultConfig for the untouched fields.
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if len(c.SupportedLocales) == 0 {
		c.SupportedLocales = def.SupportedLocales
	}
	if c.Driver == "" {
		c.Driver = def.Driver
	}
	if c.TranslationsPath == "" {
		c.TranslationsPath = def.TranslationsPath
	}
	if len(c.ResolutionOrder) == 0 {
		c.ResolutionOrder = def.ResolutionOrder
	}
	if c.SessionKey == "" {
		c.SessionKey = def.SessionKey
	}
	if c.ResolverSessionKey == "" {
		c.ResolverSessionKey = def.ResolverSessionKey
	}
	if c.CookieName == "" {
		c.CookieName = def.CookieName
	}
	if c.CookieTTL == 0 {
		c.CookieTTL = def.CookieTTL
	}
	if c.QueryParam == "" {
		c.QueryParam = def.QueryParam
	}
	if c.HeaderName == "" {
		c.HeaderName = def.HeaderName
	}
	if c.SegmentPosition == 0 {
		c.SegmentPosition = def.SegmentPosition
	}
	if len(c.DomainStrategies) == 0 {
		c.DomainStrategies = def.DomainStrategies
	}
	if c.SubdomainPosition == 0 {
		c.SubdomainPosition = def.SubdomainPosition
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = def.CacheTTL
	}
	if c.CacheKeyPrefix == "" {
		c.CacheKeyPrefix = def.CacheKeyPrefix
	}
	if c.URLStrategy == "" {
		c.URLStrategy = def.URLStrategy
	}
	if c.URLPrefixPosition == 0 {
		c.URLPrefixPosition = def.URLPrefixPosition
	}

	return c
}
