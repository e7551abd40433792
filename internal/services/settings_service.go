package services

import (
	"fmt"

	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

// SettingsService fronts the three independently persisted settings groups
// and resolves the Gemini credential with its precedence rule.
type SettingsService struct {
	Repo *repositories.SettingsRepository

	// defaultAPIKey is the environment-level fallback credential.
	defaultAPIKey string
}

func NewSettingsService(repo *repositories.SettingsRepository, defaultAPIKey string) *SettingsService {
	return &SettingsService{Repo: repo, defaultAPIKey: defaultAPIKey}
}

func (s *SettingsService) Get() models.Settings {
	return s.Repo.Get()
}

func (s *SettingsService) SetAPIKey(key string) error {
	return s.Repo.SetAPIKey(key)
}

func (s *SettingsService) SetRiskProfile(value int) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("risk profile must be between 0 and 100")
	}
	return s.Repo.SetRiskProfile(value)
}

func (s *SettingsService) SetSalesGoals(goals models.SalesGoals) error {
	return s.Repo.SetSalesGoals(goals)
}

// ResolveAPIKey returns the user-configured key, falling back to the
// environment default. Empty means no credential is available anywhere.
func (s *SettingsService) ResolveAPIKey() string {
	if key := s.Repo.Get().APIKey; key != "" {
		return key
	}
	return s.defaultAPIKey
}
