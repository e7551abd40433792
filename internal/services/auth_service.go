package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"itacatech/internal/ids"
	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

var ErrEmptyCredential = errors.New("email and password are required")

// AuthService implements the portal's login simulation: any non-empty
// credential is accepted, the role comes from the caller or from the "admin"
// substring of the email, and unknown emails get a transient identity.
type AuthService struct {
	Repo *repositories.UserRepository
}

func NewAuthService(repo *repositories.UserRepository) *AuthService {
	return &AuthService{Repo: repo}
}

// Login adopts the matching roster identity, or synthesizes one from the
// role, persists it as the current session and returns it.
func (s *AuthService) Login(email, password, role string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrEmptyCredential
	}

	userRole := models.UserRole(role)
	if !userRole.Valid() {
		userRole = models.RoleSDR
		if strings.Contains(email, "admin") {
			userRole = models.RoleAdmin
		}
	}

	user, found := s.Repo.FindByEmail(email)
	if !found {
		user = transientIdentity(email, userRole)
	}

	if err := s.Repo.SetSession(*user); err != nil {
		return nil, err
	}
	return user, nil
}

func transientIdentity(email string, role models.UserRole) *models.User {
	if role == models.RoleAdmin {
		return &models.User{ID: "1", Name: "Administrador", Email: email, Role: role, Avatar: repositories.AdminAvatarURL}
	}
	return &models.User{ID: "2", Name: "SDR Colaborador", Email: email, Role: role, Avatar: repositories.SDRAvatarURL}
}

// Logout clears the persisted session; the issued token simply stops being
// presented by the client.
func (s *AuthService) Logout() error {
	return s.Repo.ClearSession()
}

func (s *AuthService) CurrentUser() *models.User {
	return s.Repo.Session()
}

func (s *AuthService) TeamMembers() []models.User {
	return s.Repo.Members()
}

// AddTeamMember appends a roster entry with a generated id; when no avatar
// is supplied one is templated from the name.
func (s *AuthService) AddTeamMember(name, email string, role models.UserRole, avatar string) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	if avatar == "" {
		avatar = fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
	}
	user := models.User{ID: ids.New(), Name: name, Email: email, Role: role, Avatar: avatar}
	if err := s.Repo.AddMember(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateTeamMember merges the given fields into the roster entry; the
// repository re-persists the session when the signed-in identity was edited.
// Returns nil when the id is unknown.
func (s *AuthService) UpdateTeamMember(id string, updates models.UserUpdate) (*models.User, error) {
	if updates.Role != nil && !updates.Role.Valid() {
		return nil, fmt.Errorf("invalid role %q", *updates.Role)
	}
	return s.Repo.UpdateMember(id, func(u *models.User) {
		if updates.Name != nil {
			u.Name = *updates.Name
		}
		if updates.Email != nil {
			u.Email = *updates.Email
		}
		if updates.Role != nil {
			u.Role = *updates.Role
		}
		if updates.Avatar != nil {
			u.Avatar = *updates.Avatar
		}
	})
}
