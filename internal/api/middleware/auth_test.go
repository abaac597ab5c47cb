package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(ttl time.Duration) *Auth {
	return NewAuth([]byte("test-secret-for-middleware"), ttl)
}

func protectedEcho(t *testing.T, auth *Auth) (http.Handler, *string) {
	t.Helper()
	var seenUserID string
	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seenUserID
}

func TestRequireAuth_ValidToken(t *testing.T) {
	auth := newTestAuth(time.Hour)

	token, err := auth.IssueToken("u1")
	require.NoError(t, err)

	handler, seenUserID := protectedEcho(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", *seenUserID)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	auth := newTestAuth(time.Hour)
	handler, _ := protectedEcho(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	auth := newTestAuth(time.Hour)
	handler, _ := protectedEcho(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := newTestAuth(-time.Minute)
	token, err := expired.IssueToken("u1")
	require.NoError(t, err)

	auth := newTestAuth(time.Hour)
	handler, _ := protectedEcho(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	other := NewAuth([]byte("a-different-secret"), time.Hour)
	token, err := other.IssueToken("u1")
	require.NoError(t, err)

	auth := newTestAuth(time.Hour)
	handler, _ := protectedEcho(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_ContinuesWithoutToken(t *testing.T) {
	auth := newTestAuth(time.Hour)

	var seenUserID string
	handler := auth.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, seenUserID)
}
