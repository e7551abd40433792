package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/models"
)

func TestUserRepositorySeedsRoster(t *testing.T) {
	repo, err := NewUserRepository(newTestStore(t))
	require.NoError(t, err)

	members := repo.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "admin@itacare.tech", members[0].Email)
	assert.Equal(t, models.RoleAdmin, members[0].Role)
	assert.Equal(t, "sdr@itacare.tech", members[1].Email)
	assert.Equal(t, models.RoleSDR, members[1].Role)
}

func TestUserRepositorySessionLifecycle(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewUserRepository(store)
	require.NoError(t, err)
	assert.Nil(t, repo.Session())

	admin, found := repo.FindByEmail("admin@itacare.tech")
	require.True(t, found)
	require.NoError(t, repo.SetSession(*admin))

	reopened, err := NewUserRepository(store)
	require.NoError(t, err)
	session := reopened.Session()
	require.NotNil(t, session)
	assert.Equal(t, "1", session.ID)

	require.NoError(t, reopened.ClearSession())
	assert.Nil(t, reopened.Session())
}

func TestUserRepositoryUpdateMemberSyncsSession(t *testing.T) {
	repo, err := NewUserRepository(newTestStore(t))
	require.NoError(t, err)

	admin, _ := repo.FindByEmail("admin@itacare.tech")
	require.NoError(t, repo.SetSession(*admin))

	updated, err := repo.UpdateMember("1", func(u *models.User) { u.Name = "Nova Admin" })
	require.NoError(t, err)
	require.NotNil(t, updated)

	session := repo.Session()
	require.NotNil(t, session)
	assert.Equal(t, "Nova Admin", session.Name)
}

func TestUserRepositoryUpdateUnknownMember(t *testing.T) {
	repo, err := NewUserRepository(newTestStore(t))
	require.NoError(t, err)

	updated, err := repo.UpdateMember("999", func(u *models.User) { u.Name = "x" })
	require.NoError(t, err)
	assert.Nil(t, updated)
}
