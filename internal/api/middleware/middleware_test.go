package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osteosalud/booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

type fakeValidator struct{ valid string }

func (f fakeValidator) Validate(token string) error {
	if token != f.valid {
		return errors.New("invalid token")
	}
	return nil
}

func TestIdentity_HeaderPropagated(t *testing.T) {
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "user-42")

	Identity(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "user-42", gotUserID)
}

func TestIdentity_DefaultsToGuest(t *testing.T) {
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Identity(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, domain.GuestUserID, gotUserID)
}

func TestAdminAuth_ValidToken(t *testing.T) {
	var wasAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wasAdmin = IsAdmin(r.Context())
	})

	mw := AdminAuth(fakeValidator{valid: "good-token"}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/admin/agenda", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	mw(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, wasAdmin)
}

func TestAdminAuth_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer  "},
		{"wrong token", "Bearer bad-token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			mw := AdminAuth(fakeValidator{valid: "good-token"}, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/admin/agenda", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called, "handler must not run without a valid token")
		})
	}
}

func TestIsAdmin_FalseByDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsAdmin(req.Context()))
}
