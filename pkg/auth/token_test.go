package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

func newTestValidator() *TokenValidator {
	return NewTokenValidator("test-secret-key", "docto-booking", time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	tv := newTestValidator()

	token, err := tv.GenerateToken(&Actor{ID: "doctor-1", Role: types.RoleDoctor})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := tv.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "doctor-1", actor.ID)
	assert.Equal(t, types.RoleDoctor, actor.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tv := newTestValidator()
	other := NewTokenValidator("a-different-secret", "docto-booking", time.Hour)

	token, err := other.GenerateToken(&Actor{ID: "doctor-1", Role: types.RoleDoctor})
	require.NoError(t, err)

	_, err = tv.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	expired := NewTokenValidator("test-secret-key", "docto-booking", -time.Minute)

	token, err := expired.GenerateToken(&Actor{ID: "patient-1", Role: types.RolePatient})
	require.NoError(t, err)

	_, err = expired.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_UnknownRole(t *testing.T) {
	tv := newTestValidator()

	token, err := tv.GenerateToken(&Actor{ID: "user-1", Role: types.Role("admin")})
	require.NoError(t, err)

	_, err = tv.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	tv := newTestValidator()

	_, err := tv.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	tv := newTestValidator()

	token, err := tv.GenerateToken(&Actor{ID: "patient-1", Role: types.RolePatient})
	require.NoError(t, err)

	var seen *Actor
	handler := tv.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		seen = actor
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/appointments/apt-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "patient-1", seen.ID)
}

func TestMiddleware_MissingToken(t *testing.T) {
	tv := newTestValidator()

	handler := tv.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	}))

	req := httptest.NewRequest("GET", "/api/v1/appointments/apt-1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	tv := newTestValidator()

	handler := tv.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a bad token")
	}))

	req := httptest.NewRequest("GET", "/api/v1/appointments/apt-1", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
