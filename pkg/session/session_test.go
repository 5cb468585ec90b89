package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooinfinity/lingua/pkg/session"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(time.Hour, 0)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok", "locale", "fr"))

	value, ok, err := store.Get(ctx, "tok", "locale")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fr", value)

	_, ok, err = store.Get(ctx, "tok", "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "tok"))
	_, ok, err = store.Get(ctx, "tok", "locale")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(time.Hour, 0)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok", "locale", "fr"))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				_, _, _ = store.Get(ctx, "tok", "locale")
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				_ = store.Set(ctx, "tok", "locale", "de")
			}
		}()
	}
	wg.Wait()

	value, ok, err := store.Get(ctx, "tok", "locale")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "de", value)
}

func TestMemoryStoreExpiry(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(10*time.Millisecond, 0)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok", "locale", "fr"))
	time.Sleep(30 * time.Millisecond)

	_, ok, err := store.Get(ctx, "tok", "locale")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManagerSetCreatesCookie(t *testing.T) {
	t.Parallel()

	manager := session.New()
	t.Cleanup(func() { _ = manager.Close() })

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	require.NoError(t, manager.Set(w, r, "locale", "de"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "lingua_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)

	// Same request sees the value immediately.
	value, ok := manager.Get(r, "locale")
	assert.True(t, ok)
	assert.Equal(t, "de", value)
}

func TestManagerGetAcrossRequests(t *testing.T) {
	t.Parallel()

	manager := session.New()
	t.Cleanup(func() { _ = manager.Close() })

	w := httptest.NewRecorder()
	first := httptest.NewRequest("GET", "/", nil)
	require.NoError(t, manager.Set(w, first, "locale", "fr"))

	token := w.Result().Cookies()[0]

	second := httptest.NewRequest("GET", "/", nil)
	second.AddCookie(&http.Cookie{Name: token.Name, Value: token.Value})

	value, ok := manager.Get(second, "locale")
	assert.True(t, ok)
	assert.Equal(t, "fr", value)
}

func TestManagerGetWithoutSession(t *testing.T) {
	t.Parallel()

	manager := session.New()
	t.Cleanup(func() { _ = manager.Close() })

	_, ok := manager.Get(httptest.NewRequest("GET", "/", nil), "locale")
	assert.False(t, ok)
}

func TestManagerDestroy(t *testing.T) {
	t.Parallel()

	manager := session.New()
	t.Cleanup(func() { _ = manager.Close() })

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	require.NoError(t, manager.Set(w, r, "locale", "fr"))
	require.NoError(t, manager.Destroy(w, r))

	_, ok := manager.Get(httptest.NewRequest("GET", "/", nil), "locale")
	assert.False(t, ok)
}
