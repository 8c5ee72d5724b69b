package httpapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
)

func newTestAuth(t *testing.T) *AuthManager {
	t.Helper()
	auth, err := NewAuthManager("test-secret", time.Hour, "demo")
	require.NoError(t, err)
	return auth
}

func TestLoginAcceptsDemoPassword(t *testing.T) {
	auth := newTestAuth(t)

	resp, err := auth.Login(domain.LoginRequest{Username: "tucker", Password: "demo", Role: RoleManager})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, RoleManager, resp.Role)

	actor, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tucker", actor.Username)
	assert.Equal(t, RoleManager, actor.Role)
}

func TestLoginDefaultsToSalesRole(t *testing.T) {
	auth := newTestAuth(t)

	resp, err := auth.Login(domain.LoginRequest{Username: "dale", Password: "demo"})
	require.NoError(t, err)
	assert.Equal(t, RoleSales, resp.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth := newTestAuth(t)

	_, err := auth.Login(domain.LoginRequest{Username: "tucker", Password: "letmein"})
	assert.Error(t, err)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	auth := newTestAuth(t)

	_, err := auth.Login(domain.LoginRequest{Username: "tucker", Password: "demo", Role: "owner"})
	assert.Error(t, err)
}

func TestLoginRejectsBlankUsername(t *testing.T) {
	auth := newTestAuth(t)

	_, err := auth.Login(domain.LoginRequest{Username: "   ", Password: "demo"})
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	auth := newTestAuth(t)

	_, err := auth.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	auth := newTestAuth(t)
	other, err := NewAuthManager("other-secret", time.Hour, "demo")
	require.NoError(t, err)

	resp, err := other.Login(domain.LoginRequest{Username: "tucker", Password: "demo"})
	require.NoError(t, err)

	_, err = auth.ParseToken(resp.AccessToken)
	assert.Error(t, err)
}
