package admin_login

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct{ pin string }

func (f fakeVerifier) Verify(credential string) error {
	if credential != f.pin {
		return errors.New("invalid credential")
	}
	return nil
}

type fakeIssuer struct{ err error }

func (f fakeIssuer) Issue(now time.Time) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return "token-123", now.Add(time.Hour), nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestHandler(issuer fakeIssuer) *Handler {
	return NewHandler(
		fakeVerifier{pin: "2580"},
		issuer,
		fixedTime{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestHandle_Success(t *testing.T) {
	h := newTestHandler(fakeIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"pin":"2580"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, "2025-06-10T13:00:00Z", resp.ExpiresAt)
}

func TestHandle_WrongPin(t *testing.T) {
	h := newTestHandler(fakeIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"pin":"0000"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestHandle_InvalidBody(t *testing.T) {
	h := newTestHandler(fakeIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{pin}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_IssuerError(t *testing.T) {
	h := newTestHandler(fakeIssuer{err: errors.New("signing failed")})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"pin":"2580"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
