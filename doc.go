// Package lingua resolves, persists and serves per-request locales for
// HTTP applications.
//
// A Service combines three concerns behind one facade:
//
//   - Locale resolution: a configurable chain of resolvers (session,
//     cookie, query parameter, Accept-Language header, URL segment, URL
//     prefix, domain) is walked in order and the first supported candidate
//     wins. A miss falls back to the default locale, never to an error.
//   - Translation loading: group files (JSON or YAML, one file per group
//     under a per-locale directory) or a single flat JSON file per locale,
//     fallback-merged against the default locale and cached in memory with
//     an optional Redis tier.
//   - Localized URLs: prefix-based or domain-based rewriting of URLs for a
//     target locale.
//
// Basic usage:
//
//	cfg, err := lingua.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg.SupportedLocales = []string{"en", "fr", "pt_BR"}
//	cfg.ResolutionOrder = []string{"session", "cookie", "header"}
//
//	svc, err := lingua.New(cfg, lingua.WithSessionStore(sessions))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Use(svc.Middleware())
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		loc := svc.CurrentLocale(r.Context())
//		data := svc.Translations(r.Context())
//		_ = loc
//		_ = data
//	})
//
// Locale codes are normalized everywhere: "pt-br" becomes "pt_BR", so
// configuration, translation directories and resolver output never disagree
// on casing or separators.
package lingua
