package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

var secret = []byte("test-secret")

func identityRouter() *ginext.Engine {
	r := ginext.New("test")
	r.GET("/me", Identity(secret), func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, ginext.H{"id": actor.ID, "role": actor.Role})
	})
	return r
}

func call(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity_ValidToken(t *testing.T) {
	token, err := IssueToken(secret, domain.Actor{ID: 20, Role: domain.RoleOwner}, time.Hour)
	require.NoError(t, err)

	w := call(identityRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":20,"role":"owner"}`, w.Body.String())
}

func TestIdentity_Rejects(t *testing.T) {
	expired, err := IssueToken(secret, domain.Actor{ID: 20, Role: domain.RoleOwner}, -time.Minute)
	require.NoError(t, err)
	foreign, err := IssueToken([]byte("other"), domain.Actor{ID: 20, Role: domain.RoleOwner}, time.Hour)
	require.NoError(t, err)
	badRole, err := IssueToken(secret, domain.Actor{ID: 20, Role: "admin"}, time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{Role: "owner"}).SignedString(secret)
	require.NoError(t, err)

	tests := []struct {
		name string
		auth string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"garbage", "Bearer not-a-jwt"},
		{"expired", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
		{"unknown role", "Bearer " + badRole},
		{"no subject", "Bearer " + noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(identityRouter(), tt.auth)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestParseActor_RejectsOtherAlgorithms(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims{
		Role:             "owner",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "20"},
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = ParseActor(secret, token)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
