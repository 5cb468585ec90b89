package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Config holds session manager settings.
type Config struct {
	CookieName      string        `env:"LINGUA_SESSION_COOKIE" envDefault:"lingua_session"`
	TTL             time.Duration `env:"LINGUA_SESSION_TTL" envDefault:"720h"`
	CleanupInterval time.Duration `env:"LINGUA_SESSION_CLEANUP_INTERVAL" envDefault:"10m"`
	CookiePath      string        `env:"LINGUA_SESSION_COOKIE_PATH" envDefault:"/"`
	CookieSecure    bool          `env:"LINGUA_SESSION_COOKIE_SECURE" envDefault:"false"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		CookieName:      "lingua_session",
		TTL:             720 * time.Hour,
		CleanupInterval: 10 * time.Minute,
		CookiePath:      "/",
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore substitutes the session store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithConfig replaces the manager configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// Manager ties a Store to a cookie-carried session token.
type Manager struct {
	store  Store
	config Config
}

// New creates a session manager. Without WithStore it uses a MemoryStore
// sized by the configured TTL and cleanup interval.
func New(opts ...Option) *Manager {
	m := &Manager{config: DefaultConfig()}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.TTL, m.config.CleanupInterval)
	}

	return m
}

// Get reads a session value for the request. A request without a session
// cookie has no session data.
func (m *Manager) Get(r *http.Request, key string) (string, bool) {
	token, ok := m.token(r)
	if !ok {
		return "", false
	}

	value, ok, err := m.store.Get(r.Context(), token, key)
	if err != nil {
		return "", false
	}
	return value, ok
}

// Set writes a session value, creating the session and its cookie when the
// request carries none yet.
func (m *Manager) Set(w http.ResponseWriter, r *http.Request, key, value string) error {
	token, ok := m.token(r)
	if !ok {
		token = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     m.config.CookieName,
			Value:    token,
			Path:     m.config.CookiePath,
			MaxAge:   int(m.config.TTL.Seconds()),
			Secure:   m.config.CookieSecure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		// Let same-request reads observe the new session.
		r.AddCookie(&http.Cookie{Name: m.config.CookieName, Value: token})
	}

	return m.store.Set(r.Context(), token, key, value)
}

// Destroy removes the session and expires its cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	token, ok := m.token(r)
	if !ok {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Path:     m.config.CookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return m.store.Delete(r.Context(), token)
}

// Close releases the default store's resources when it owns any.
func (m *Manager) Close() error {
	if closer, ok := m.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (m *Manager) token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.config.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
