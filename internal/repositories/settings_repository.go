package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"itacatech/internal/models"
	"itacatech/internal/storage"
)

// SettingsRepository persists each settings group under its own key, so a
// partial write never corrupts the others. The risk profile is stored as a
// decimal string and the API key as a raw string, matching the original
// portal's storage layout.
type SettingsRepository struct {
	store storage.Store

	mu       sync.Mutex
	settings models.Settings
}

func NewSettingsRepository(store storage.Store) (*SettingsRepository, error) {
	r := &SettingsRepository{
		store: store,
		settings: models.Settings{
			RiskProfile: models.DefaultRiskProfile,
			SalesGoals:  models.DefaultSalesGoals(),
		},
	}

	if raw, err := store.Get(storage.KeyAPIKey); err == nil {
		r.settings.APIKey = string(raw)
	} else if err != storage.ErrNotFound {
		return nil, fmt.Errorf("load api key: %w", err)
	}

	if raw, err := store.Get(storage.KeyRiskProfile); err == nil {
		if n, convErr := strconv.Atoi(string(raw)); convErr == nil {
			r.settings.RiskProfile = n
		}
	} else if err != storage.ErrNotFound {
		return nil, fmt.Errorf("load risk profile: %w", err)
	}

	if raw, err := store.Get(storage.KeySalesGoals); err == nil {
		if err := json.Unmarshal(raw, &r.settings.SalesGoals); err != nil {
			return nil, fmt.Errorf("decode sales goals: %w", err)
		}
	} else if err != storage.ErrNotFound {
		return nil, fmt.Errorf("load sales goals: %w", err)
	}

	return r, nil
}

// Get returns a snapshot of all settings groups.
func (r *SettingsRepository) Get() models.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// SetAPIKey accepts any string; credential format is not validated here.
func (r *SettingsRepository) SetAPIKey(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.APIKey = key
	return r.store.Put(storage.KeyAPIKey, []byte(key))
}

func (r *SettingsRepository) SetRiskProfile(value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.RiskProfile = value
	return r.store.Put(storage.KeyRiskProfile, []byte(strconv.Itoa(value)))
}

func (r *SettingsRepository) SetSalesGoals(goals models.SalesGoals) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.SalesGoals = goals
	raw, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("encode sales goals: %w", err)
	}
	return r.store.Put(storage.KeySalesGoals, raw)
}
