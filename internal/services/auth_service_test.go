package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	repo, err := repositories.NewUserRepository(newTestStore(t))
	require.NoError(t, err)
	return NewAuthService(repo)
}

func TestLoginAdoptsRosterIdentity(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Login("admin@itacare.tech", "qualquer-coisa", "")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Administrador", user.Name)

	session := svc.CurrentUser()
	require.NotNil(t, session)
	assert.Equal(t, "1", session.ID)
}

func TestLoginInfersRoleFromEmail(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Login("someone@x.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSDR, user.Role)
	assert.Equal(t, "2", user.ID)

	user, err = svc.Login("admin.ops@x.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "1", user.ID)
}

func TestLoginExplicitRoleWins(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Login("someone@x.com", "pw", "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("", "pw", "")
	assert.ErrorIs(t, err, ErrEmptyCredential)

	_, err = svc.Login("a@x.com", "   ", "")
	assert.ErrorIs(t, err, ErrEmptyCredential)
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("sdr@itacare.tech", "pw", "")
	require.NoError(t, err)
	require.NotNil(t, svc.CurrentUser())

	require.NoError(t, svc.Logout())
	assert.Nil(t, svc.CurrentUser())
}

func TestAddTeamMember(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.AddTeamMember("Carla Souza", "carla@itacare.tech", models.RoleSDR, "")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Contains(t, user.Avatar, "ui-avatars.com")

	members := svc.TeamMembers()
	assert.Len(t, members, 3)

	_, err = svc.AddTeamMember("X", "x@x.com", "manager", "")
	assert.Error(t, err)
}

func TestUpdateTeamMember(t *testing.T) {
	svc := newAuthService(t)

	name := "Administrador Geral"
	user, err := svc.UpdateTeamMember("1", models.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Administrador Geral", user.Name)

	missing, err := svc.UpdateTeamMember("999", models.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)

	bad := models.UserRole("manager")
	_, err = svc.UpdateTeamMember("1", models.UserUpdate{Role: &bad})
	assert.Error(t, err)
}
