package jwt

import (
	"testing"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "24h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "Budi", "budi", user.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "user-1", userID)
	role, _ := decoded.Get("role")
	assert.Equal(t, "user", role)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-1", "Budi", "budi", user.RoleUser)
	assert.Error(t, err)
}
