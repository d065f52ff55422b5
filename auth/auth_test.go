package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a-long-enough-test-secret", time.Hour)

	token, err := issuer.GenerateToken("42")
	req.NoError(err)

	claims, err := issuer.ValidateToken(token)
	req.NoError(err)
	req.Equal("42", claims.UserID)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a-long-enough-test-secret", time.Hour)

	expired, err := NewTokenIssuer("a-long-enough-test-secret", -time.Minute).GenerateToken("42")
	req.NoError(err)
	_, err = issuer.ValidateToken(expired)
	req.Error(err)

	foreign, err := NewTokenIssuer("another-secret", time.Hour).GenerateToken("42")
	req.NoError(err)
	_, err = issuer.ValidateToken(foreign)
	req.Error(err)

	_, err = issuer.ValidateToken("not-a-jwt")
	req.Error(err)
}

func TestMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("a-long-enough-test-secret", time.Hour)
	token, err := issuer.GenerateToken("42")
	require.NoError(t, err)

	handler := Middleware(issuer, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserID(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(uid))
	}))

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{"bearer header", "Bearer " + token, "", http.StatusOK},
		{"query token", "", "?token=" + token, http.StatusOK},
		{"missing token", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r := httptest.NewRequest(http.MethodGet, "/ws"+tt.query, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			req.Equal(tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				req.Equal("42", w.Body.String())
			}
		})
	}
}
