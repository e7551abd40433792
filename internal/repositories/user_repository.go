package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"itacatech/internal/models"
	"itacatech/internal/storage"
)

// Default avatars for the two seeded identities and for transient logins.
const (
	AdminAvatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"
	SDRAvatarURL   = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"
)

// UserRepository keeps the team roster and the current session identity.
// The roster persists under its own key; the session identity under another,
// so logout never touches the roster document.
type UserRepository struct {
	store storage.Store

	mu      sync.Mutex
	members []models.User
	session *models.User
}

func NewUserRepository(store storage.Store) (*UserRepository, error) {
	r := &UserRepository{store: store}

	raw, err := store.Get(storage.KeyTeam)
	switch err {
	case nil:
		if err := json.Unmarshal(raw, &r.members); err != nil {
			return nil, fmt.Errorf("decode team: %w", err)
		}
	case storage.ErrNotFound:
		r.members = seedTeam()
		if err := r.persistTeamLocked(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("load team: %w", err)
	}

	raw, err = store.Get(storage.KeySession)
	switch err {
	case nil:
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		r.session = &u
	case storage.ErrNotFound:
		// anonymous until the first login
	default:
		return nil, fmt.Errorf("load session: %w", err)
	}
	return r, nil
}

func seedTeam() []models.User {
	return []models.User{
		{ID: "1", Name: "Administrador", Email: "admin@itacare.tech", Role: models.RoleAdmin, Avatar: AdminAvatarURL},
		{ID: "2", Name: "SDR Colaborador", Email: "sdr@itacare.tech", Role: models.RoleSDR, Avatar: SDRAvatarURL},
	}
}

// Members returns a copy of the roster.
func (r *UserRepository) Members() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, len(r.members))
	copy(out, r.members)
	return out
}

// FindByEmail looks a roster entry up by exact email match.
func (r *UserRepository) FindByEmail(email string) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].Email == email {
			u := r.members[i]
			return &u, true
		}
	}
	return nil, false
}

func (r *UserRepository) FindByID(id string) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID == id {
			u := r.members[i]
			return &u, true
		}
	}
	return nil, false
}

// AddMember appends a roster entry and persists the roster.
func (r *UserRepository) AddMember(u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, u)
	return r.persistTeamLocked()
}

// UpdateMember applies fn to the matching roster entry; when the edited
// identity is also the current session, the session document is re-persisted
// so the signed-in user sees the change immediately.
func (r *UserRepository) UpdateMember(id string, fn func(*models.User)) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID == id {
			fn(&r.members[i])
			u := r.members[i]
			if err := r.persistTeamLocked(); err != nil {
				return nil, err
			}
			if r.session != nil && r.session.ID == id {
				updated := u
				r.session = &updated
				if err := r.persistSessionLocked(); err != nil {
					return nil, err
				}
			}
			return &u, nil
		}
	}
	return nil, nil
}

// Session returns the current signed-in identity, or nil when anonymous.
func (r *UserRepository) Session() *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil
	}
	u := *r.session
	return &u
}

// SetSession adopts u as the current identity and persists it.
func (r *UserRepository) SetSession(u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = &u
	return r.persistSessionLocked()
}

// ClearSession drops the identity from memory and the store.
func (r *UserRepository) ClearSession() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	err := r.store.Delete(storage.KeySession)
	if err == storage.ErrNotFound {
		return nil
	}
	return err
}

func (r *UserRepository) persistTeamLocked() error {
	raw, err := json.Marshal(r.members)
	if err != nil {
		return fmt.Errorf("encode team: %w", err)
	}
	return r.store.Put(storage.KeyTeam, raw)
}

func (r *UserRepository) persistSessionLocked() error {
	raw, err := json.Marshal(r.session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.store.Put(storage.KeySession, raw)
}
