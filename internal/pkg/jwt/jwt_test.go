package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/leave"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresAt, err := svc.GenerateAccessToken("emp-001", leave.RoleTeamLead)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	employeeID, ok := decoded.Get("employee_id")
	require.True(t, ok)
	assert.Equal(t, "emp-001", employeeID)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "team_lead", role)

	tokenType, ok := decoded.Get("type")
	require.True(t, ok)
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessTokenBadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("emp-001", leave.RoleEmployee)
	assert.Error(t, err)
}
