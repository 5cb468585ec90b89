package lingua

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/tooinfinity/lingua/pkg/locale"
	"github.com/tooinfinity/lingua/pkg/localeurl"
	"github.com/tooinfinity/lingua/pkg/resolver"
	"github.com/tooinfinity/lingua/pkg/translation"
)

// Service is the locale facade: it resolves the active locale from the
// configured resolver chain, persists explicit locale choices, loads and
// merges translation data through a two-tier cache and generates localized
// URLs.
//
// A Service instance is process-scoped and safe for concurrent requests:
// the supported set, resolver chain and configuration are immutable after
// New; the translation cache and the ambient current locale are
// mutex-guarded.
type Service struct {
	config        Config
	logger        *slog.Logger
	supported     []string
	defaultLocale string

	registry resolver.Registry
	order    []resolver.Spec
	manager  *resolver.Manager

	session      SessionStore
	groups       *translation.GroupLoader
	flat         *translation.JSONLoader
	memory       *translation.Cache
	persistent   translation.Store
	pageResolver translation.PageResolverFunc
	urls         *localeurl.Generator

	mu      sync.RWMutex
	current string
}

// New creates a Service from the configuration and options. Zero-value
// config fields fall back to DefaultConfig values.
func New(cfg Config, opts ...Option) (*Service, error) {
	cfg = cfg.withDefaults()

	if cfg.Driver != DriverGroup && cfg.Driver != DriverJSON {
		return nil, ErrUnknownDriver
	}

	s := &Service{
		config:       cfg,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry:     resolver.DefaultRegistry(),
		memory:       translation.NewCache(),
		pageResolver: translation.ResolvePageGroups,
		groups:       translation.NewGroupLoader(cfg.TranslationsPath),
		flat:         translation.NewJSONLoader(cfg.TranslationsPath),
	}

	s.supported = make([]string, 0, len(cfg.SupportedLocales))
	for _, code := range cfg.SupportedLocales {
		normalized := locale.Normalize(code)
		if normalized != "" && !slices.Contains(s.supported, normalized) {
			s.supported = append(s.supported, normalized)
		}
	}
	if len(s.supported) == 0 {
		return nil, ErrNoSupportedLocales
	}

	s.defaultLocale = locale.Normalize(cfg.DefaultLocale)
	if s.defaultLocale == "" {
		s.defaultLocale = s.supported[0]
	}

	s.order = resolutionOrder(cfg)

	for _, opt := range opts {
		opt(s)
	}

	if s.persistent == nil && cfg.CacheEnabled && cfg.RedisURL != "" {
		store, err := translation.NewRedisStoreFromURL(context.Background(), cfg.RedisURL, cfg.CacheKeyPrefix)
		if err != nil {
			return nil, err
		}
		s.persistent = store
	}

	s.manager = resolver.NewManager(s.order, s.registry, s.resolverConfig())
	s.urls = urlGenerator(cfg)

	return s, nil
}

// resolutionOrder translates the flat configuration into resolver specs.
func resolutionOrder(cfg Config) []resolver.Spec {
	disabled := false
	specs := make([]resolver.Spec, len(cfg.ResolutionOrder))
	for i, name := range cfg.ResolutionOrder {
		specs[i] = resolver.Spec{Name: name}
		if slices.Contains(cfg.DisabledResolvers, name) {
			specs[i].Enabled = &disabled
		}
	}
	return specs
}

func (s *Service) resolverConfig() resolver.Config {
	rcfg := resolver.Config{
		SessionKey:        s.sessionKey(),
		CookieName:        s.config.CookieName,
		QueryParam:        s.config.QueryParam,
		HeaderName:        s.config.HeaderName,
		HeaderUseQuality:  s.config.HeaderUseQuality,
		SegmentPosition:   s.config.SegmentPosition,
		SegmentPatterns:   patternsOrDefault(s.config.SegmentPatterns),
		DomainHosts:       s.config.DomainHosts,
		DomainStrategies:  s.config.DomainStrategies,
		SubdomainPosition: s.config.SubdomainPosition,
		SubdomainPatterns: patternsOrDefault(s.config.SubdomainPatterns),
		BaseDomains:       s.config.BaseDomains,
	}

	if s.session != nil {
		rcfg.SessionReader = func(r *http.Request, key string) (string, bool) {
			return s.session.Get(r, key)
		}
	}

	return rcfg
}

func urlGenerator(cfg Config) *localeurl.Generator {
	opts := []localeurl.Option{
		localeurl.WithStrategy(cfg.URLStrategy),
		localeurl.WithPosition(cfg.URLPrefixPosition),
		localeurl.WithHosts(cfg.URLHosts),
	}
	if len(cfg.SegmentPatterns) > 0 {
		opts = append(opts, localeurl.WithPatterns(cfg.SegmentPatterns...))
	}
	return localeurl.New(opts...)
}

func patternsOrDefault(patterns []string) []string {
	if len(patterns) > 0 {
		return patterns
	}
	return []string{resolver.DefaultLocalePattern}
}

// sessionKey returns the session key holding the locale.
//
// Migration shim, preserved verbatim from the structured-resolver rollout:
// the legacy single key wins only when it was customized while the
// structured key was left at its out-of-the-box default. Do not
// generalize the asymmetry.
func (s *Service) sessionKey() string {
	if s.config.SessionKey != defaultSessionKey && s.config.ResolverSessionKey == defaultSessionKey {
		return s.config.SessionKey
	}
	return s.config.ResolverSessionKey
}

// Resolve runs the resolver chain against a request and returns the first
// supported candidate, falling back to the default locale on a miss.
// A resolution miss is expected, not an error.
func (s *Service) Resolve(r *http.Request) string {
	code, ok := s.manager.Resolve(r, s.IsSupported, locale.Normalize)
	if !ok {
		return s.defaultLocale
	}
	return code
}

// CurrentLocale returns the active locale: the request-scoped value stored
// in the context by the middleware, else the ambient locale set by
// SetLocale, else the default.
func (s *Service) CurrentLocale(ctx context.Context) string {
	if ctx != nil {
		if code, ok := LocaleFromContext(ctx); ok {
			return code
		}
	}
	return s.ambientLocale()
}

func (s *Service) ambientLocale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current != "" {
		return s.current
	}
	return s.defaultLocale
}

// SetLocale validates and persists an explicit locale choice: session
// write, ambient locale update and, when configured, a locale cookie.
// An unsupported code returns UnsupportedLocaleError and mutates nothing.
func (s *Service) SetLocale(w http.ResponseWriter, r *http.Request, code string) error {
	normalized := locale.Normalize(code)
	if !s.IsSupported(normalized) {
		return &UnsupportedLocaleError{Locale: code, Supported: s.SupportedLocales()}
	}

	if s.session != nil && w != nil && r != nil {
		if err := s.session.Set(w, r, s.sessionKey(), normalized); err != nil {
			// Environmental failure: the locale still applies for this
			// process, it just will not stick across requests.
			s.logger.Warn("failed to persist locale to session", "locale", normalized, "error", err)
		}
	}

	s.mu.Lock()
	s.current = normalized
	s.mu.Unlock()

	if s.config.CookiePersist && w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     s.config.CookieName,
			Value:    normalized,
			Path:     "/",
			MaxAge:   int(s.config.CookieTTL.Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
	}

	return nil
}

// IsSupported reports whether the code, once normalized, belongs to the
// supported-locale set.
func (s *Service) IsSupported(code string) bool {
	return slices.Contains(s.supported, locale.Normalize(code))
}

// SupportedLocales returns the normalized supported-locale set.
func (s *Service) SupportedLocales() []string {
	return slices.Clone(s.supported)
}

// DefaultLocale returns the normalized default locale.
func (s *Service) DefaultLocale() string {
	return s.defaultLocale
}

// IsRTL reports whether the locale is written right-to-left. An empty code
// means the active locale.
func (s *Service) IsRTL(code string) bool {
	if code == "" {
		code = s.ambientLocale()
	}
	return locale.IsRTL(code, s.rtlLanguages())
}

// Direction returns "rtl" or "ltr" for the locale. An empty code means
// the active locale.
func (s *Service) Direction(code string) string {
	if code == "" {
		code = s.ambientLocale()
	}
	return locale.Direction(code, s.rtlLanguages())
}

func (s *Service) rtlLanguages() []string {
	if len(s.config.RTLLanguages) > 0 {
		return s.config.RTLLanguages
	}
	return nil
}

// LocalizedURL returns the URL localized to the given locale under the
// configured strategy.
func (s *Service) LocalizedURL(rawURL, code string) string {
	return s.urls.Localize(rawURL, locale.Normalize(code))
}

// Translations returns the full translation payload for the active locale.
//
// The JSON driver loads the locale's single flat mapping. The group driver
// loads every discoverable group, or only the configured default groups
// when lazy loading is on. Data from the default locale fills any group or
// key missing from the active locale; active-locale values win.
func (s *Service) Translations(ctx context.Context) translation.Group {
	loc := s.CurrentLocale(ctx)

	if s.config.Driver == DriverJSON {
		data := s.flat.LoadLocale(loc)
		if loc != s.defaultLocale {
			data = translation.Merge(data, s.flat.LoadLocale(s.defaultLocale))
		}
		return data
	}

	var names []string
	if s.config.LazyLoading {
		names = s.config.DefaultGroups
	} else {
		names = s.groups.Groups(loc)
		for _, name := range s.groups.Groups(s.defaultLocale) {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
		slices.Sort(names)
	}

	return s.TranslationsFor(ctx, names...)
}

// TranslationGroup loads one named group for the active locale,
// fallback-merged against the default locale's same-named group.
func (s *Service) TranslationGroup(ctx context.Context, name string) translation.Group {
	loc := s.CurrentLocale(ctx)

	data := s.loadGroup(ctx, loc, name)
	if loc != s.defaultLocale {
		data = translation.Merge(data, s.loadGroup(ctx, s.defaultLocale, name))
	}
	return data
}

// TranslationsFor loads several named groups, keyed by group name. Groups
// empty in both the active and the default locale are omitted, never an
// error.
func (s *Service) TranslationsFor(ctx context.Context, names ...string) translation.Group {
	result := translation.Group{}
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if data := s.TranslationGroup(ctx, name); len(data) > 0 {
			result[name] = data
		}
	}

	return result
}

// AvailableGroups lists group names discoverable for the active locale,
// sorted lexically. A locale without a translation directory yields an
// empty list.
func (s *Service) AvailableGroups(ctx context.Context) []string {
	return s.groups.Groups(s.CurrentLocale(ctx))
}

// GroupsForPage computes the translation groups for a page identifier:
// the configured default groups plus the page resolver's result,
// duplicate-safe.
func (s *Service) GroupsForPage(pageID string) []string {
	groups := slices.Clone(s.config.DefaultGroups)
	for _, name := range s.pageResolver(pageID) {
		if !slices.Contains(groups, name) {
			groups = append(groups, name)
		}
	}
	return groups
}

// TranslationsForPage loads the groups computed for a page identifier.
func (s *Service) TranslationsForPage(ctx context.Context, pageID string) translation.Group {
	return s.TranslationsFor(ctx, s.GroupsForPage(pageID)...)
}

// ClearTranslationCache removes cached translation data for the given
// locales, or for every supported locale when none are given. Both the
// in-memory and the persistent tier are cleared.
func (s *Service) ClearTranslationCache(ctx context.Context, locales ...string) {
	targets := locales
	if len(targets) == 0 {
		targets = s.supported
	}

	for _, raw := range targets {
		loc := locale.Normalize(raw)

		var names []string
		if s.persistent != nil {
			for name := range s.memory.AllForLocale(loc) {
				names = append(names, name)
			}
			for _, name := range s.groups.Groups(loc) {
				if !slices.Contains(names, name) {
					names = append(names, name)
				}
			}
		}

		s.memory.FlushLocale(loc)

		for _, name := range names {
			if err := s.persistent.Delete(ctx, loc, name); err != nil {
				s.logger.Debug("failed to clear persistent translation cache",
					"locale", loc, "group", name, "error", err)
			}
		}
	}
}

// loadGroup reads one (locale, group) pair through the cache tiers:
// memory, then the persistent store, then the filesystem. Filesystem loads
// populate both tiers.
func (s *Service) loadGroup(ctx context.Context, loc, name string) translation.Group {
	if data, ok := s.memory.Get(loc, name); ok {
		return data
	}

	if s.persistent != nil {
		data, ok, err := s.persistent.Get(ctx, loc, name)
		if err != nil {
			// Degrades to a tier miss; translation UX never hard-fails
			// on a transient cache error.
			s.logger.Debug("persistent translation cache read failed",
				"locale", loc, "group", name, "error", err)
		}
		if ok {
			s.memory.Put(loc, name, data)
			return data
		}
	}

	data := s.groups.LoadGroup(loc, name)
	s.memory.Put(loc, name, data)

	if s.persistent != nil && len(data) > 0 {
		if err := s.persistent.Set(ctx, loc, name, data, s.config.CacheTTL); err != nil {
			s.logger.Debug("persistent translation cache write failed",
				"locale", loc, "group", name, "error", err)
		}
	}

	return data
}
