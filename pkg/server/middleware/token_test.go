package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var seenSubject string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ := GetSubject(r.Context())
		seenSubject = subject
		w.WriteHeader(http.StatusOK)
	})
	return handler, &seenSubject
}

func TestTokenMiddleware(t *testing.T) {
	auth := NewTokenAuthenticator([]byte("test-secret"))
	handler, seenSubject := newTestHandler(t)
	wrapped := auth.Middleware(handler)

	token, err := auth.IssueToken("gm", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gm", *seenSubject)
}

func TestTokenMiddlewareRejections(t *testing.T) {
	auth := NewTokenAuthenticator([]byte("test-secret"))
	otherAuth := NewTokenAuthenticator([]byte("other-secret"))
	handler, _ := newTestHandler(t)
	wrapped := auth.Middleware(handler)

	expired, err := auth.IssueToken("gm", -time.Minute)
	require.NoError(t, err)
	foreign, err := otherAuth.IssueToken("gm", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: `Token token="abc"`},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
