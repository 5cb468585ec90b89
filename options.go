package lingua

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/tooinfinity/lingua/pkg/resolver"
	"github.com/tooinfinity/lingua/pkg/translation"
)

// SessionStore reads and writes session values bound to a request. The
// pkg/session Manager implements it; any host session engine can be
// adapted to it.
type SessionStore interface {
	Get(r *http.Request, key string) (string, bool)
	Set(w http.ResponseWriter, r *http.Request, key, value string) error
}

// Option configures a Service.
type Option func(*Service)

// WithLogger provides a logger for the service. Without it a discard
// logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNoLogging disables all logging.
func WithNoLogging() Option {
	return func(s *Service) {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// WithSessionStore wires the session backend used by the session resolver
// and by SetLocale persistence.
func WithSessionStore(store SessionStore) Option {
	return func(s *Service) {
		if store != nil {
			s.session = store
		}
	}
}

// WithPersistentStore enables the persistent translation-cache tier.
func WithPersistentStore(store translation.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.persistent = store
		}
	}
}

// WithPageResolver overrides the default page-to-group mapping.
func WithPageResolver(fn translation.PageResolverFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.pageResolver = fn
		}
	}
}

// WithResolverFactory substitutes the factory for one resolver name while
// keeping its position in the resolution order.
func WithResolverFactory(name string, factory resolver.Factory) Option {
	return func(s *Service) {
		if name != "" && factory != nil {
			s.registry[name] = factory
		}
	}
}

// WithResolutionOrder replaces the configured resolution order with
// explicit specs, including per-spec enabled flags.
func WithResolutionOrder(specs ...resolver.Spec) Option {
	return func(s *Service) {
		if len(specs) > 0 {
			s.order = specs
		}
	}
}
