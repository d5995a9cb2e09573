package services

import (
	"testing"

	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, expiresAt, err := GenerateToken("user-uuid", "auth-uuid")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-uuid", claims.UUID)
	assert.Equal(t, "auth-uuid", claims.AuthUUID)
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not-a-token")
	require.Error(t, err)

	var appErr *errs.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errs.ErrorTypeAuthorization))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, _, err := GenerateToken("user-uuid", "auth-uuid")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateToken("user-uuid", "auth-uuid")
	require.Error(t, err)
}

func TestRoleMutable(t *testing.T) {
	admin := models.Capabilities{Admin: true}
	nonAdmin := models.Capabilities{Project: true, Personal: true, Financial: true}

	owner := models.Auth{ID: models.OwnerRoleID, Type: models.OwnerRoleType}
	regular := models.Auth{ID: 3, Type: "Accountant"}

	assert.True(t, regular.ID != models.OwnerRoleID)
	assert.True(t, roleMutable(regular, admin))

	// the owner role stays frozen even for admins
	assert.True(t, owner.IsOwner())
	assert.False(t, roleMutable(owner, admin))

	assert.False(t, roleMutable(regular, nonAdmin))
	assert.False(t, roleMutable(owner, nonAdmin))
}

func TestCheckPermissions(t *testing.T) {
	caps := models.Capabilities{Project: true, Personal: true}

	assert.NoError(t, CheckPermissions(caps, map[string]bool{"project": true}))
	assert.NoError(t, CheckPermissions(caps, map[string]bool{"project": true, "personal": true}))
	assert.NoError(t, CheckPermissions(caps, nil))

	err := CheckPermissions(caps, map[string]bool{"financial": true})
	require.Error(t, err)
	var appErr *errs.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errs.ErrorTypeAuthorization))

	assert.Error(t, CheckPermissions(caps, map[string]bool{"admin": true}))
	assert.Error(t, CheckPermissions(caps, map[string]bool{"project": true, "admin": true}))
}
