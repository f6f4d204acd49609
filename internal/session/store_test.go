package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/pkg/cache"
	"storefront/internal/pkg/logger"
	"storefront/internal/pkg/token"
	"storefront/internal/session"
)

func requestWith(c *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/home", nil)
	if c != nil {
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return r
}

func newCookieStore(t *testing.T) *session.CookieStore {
	t.Helper()
	codec, err := token.NewService("segredo", session.DefaultTTL)
	require.NoError(t, err)
	return session.NewCookieStore(codec, session.CookieOptions{}, logger.NewNop())
}

func TestCookieStore_CookieAttributes(t *testing.T) {
	store := newCookieStore(t)

	c, err := store.Commit(context.Background(), &domain.Session{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "__session", c.Name)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), c.MaxAge)
}

func TestCookieStore_RoundTrip(t *testing.T) {
	store := newCookieStore(t)
	original := &domain.Session{
		UserID:            "u1",
		RegistrationStage: 3,
		CachedRoles:       &domain.RoleFlags{IsRider: true, IsModerator: true},
	}

	c, err := store.Commit(context.Background(), original)
	require.NoError(t, err)

	opened, err := store.Open(requestWith(c))
	require.NoError(t, err)
	assert.Equal(t, original, opened)
}

func TestCookieStore_NoOrTamperedCookie(t *testing.T) {
	store := newCookieStore(t)

	sess, err := store.Open(requestWith(nil))
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())

	sess, err = store.Open(requestWith(&http.Cookie{Name: "__session", Value: "adulterado"}))
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestCookieStore_Destroy(t *testing.T) {
	store := newCookieStore(t)
	sess := &domain.Session{UserID: "u1"}

	c, err := store.Destroy(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, -1, c.MaxAge)
	assert.Empty(t, c.Value)
	assert.False(t, sess.IsAuthenticated())
}

func newRedisStore(t *testing.T) (*miniredis.Miniredis, *session.RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := cache.NewRedisClient(mr.Addr())
	t.Cleanup(func() { _ = client.Close() })
	return mr, session.NewRedisStore(client, session.CookieOptions{Secure: true}, logger.NewNop())
}

func TestRedisStore_CommitOpenDestroy(t *testing.T) {
	mr, store := newRedisStore(t)
	ctx := context.Background()
	sess := &domain.Session{UserID: "u1", RegistrationStage: 2}

	c, err := store.Commit(ctx, sess)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, sess.ID, c.Value)
	assert.True(t, c.Secure)
	assert.True(t, mr.Exists("session:"+sess.ID))
	assert.Equal(t, session.DefaultTTL, mr.TTL("session:"+sess.ID))

	opened, err := store.Open(requestWith(c))
	require.NoError(t, err)
	assert.Equal(t, sess, opened)

	id := sess.ID
	expired, err := store.Destroy(ctx, opened)
	require.NoError(t, err)
	assert.Equal(t, -1, expired.MaxAge)
	assert.False(t, mr.Exists("session:"+id))

	reopened, err := store.Open(requestWith(c))
	require.NoError(t, err)
	assert.False(t, reopened.IsAuthenticated())
}

func TestRedisStore_UnknownOrMalformedID(t *testing.T) {
	mr, store := newRedisStore(t)

	sess, err := store.Open(requestWith(&http.Cookie{Name: "__session", Value: "nao-uuid"}))
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())

	id := "5b0f6c0e-1f7a-4a43-9a8e-8c3f4b1f2e11"
	require.NoError(t, mr.Set("session:"+id, "{corrompido"))
	sess, err = store.Open(requestWith(&http.Cookie{Name: "__session", Value: id}))
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestRedisStore_OpenRedisDown(t *testing.T) {
	mr, store := newRedisStore(t)
	id := "5b0f6c0e-1f7a-4a43-9a8e-8c3f4b1f2e11"
	mr.Close()

	sess, err := store.Open(requestWith(&http.Cookie{Name: "__session", Value: id}))
	assert.Error(t, err)
	assert.NotNil(t, sess)
	assert.False(t, sess.IsAuthenticated())
}
