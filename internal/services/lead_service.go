package services

import (
	"errors"
	"strings"
	"time"

	"itacatech/internal/ids"
	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

var (
	ErrDuplicateLead = errors.New("já existe um lead com este e-mail ou telefone")
	ErrInvalidStatus = errors.New("invalid status")
)

// LeadService owns the pipeline rules: defaults, id generation and the
// duplicate checks that keep the store layer unconditionally trusting.
type LeadService struct {
	Repo *repositories.LeadRepository
}

func NewLeadService(repo *repositories.LeadRepository) *LeadService {
	return &LeadService{Repo: repo}
}

func (s *LeadService) List() []models.Lead {
	return s.Repo.All()
}

// Create inserts a manually entered lead. A lead with the same email
// (case-insensitive) or the same phone digits is rejected.
func (s *LeadService) Create(lead models.Lead) (*models.Lead, error) {
	if lead.Status == "" {
		lead.Status = models.LeadNew
	}
	if !lead.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if s.isDuplicate(lead.Email, lead.Phone) {
		return nil, ErrDuplicateLead
	}
	if lead.Source == "" {
		lead.Source = "Manual"
	}
	lead.ID = ids.NewSuffixed()
	lead.CreatedAt = time.Now().Format(time.RFC3339)
	if err := s.Repo.Insert(lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// insert is used by prospecting, which runs its own duplicate rules.
func (s *LeadService) insert(lead models.Lead) (*models.Lead, error) {
	lead.ID = ids.NewSuffixed()
	lead.Status = models.LeadNew
	lead.CreatedAt = time.Now().Format(time.RFC3339)
	if err := s.Repo.Insert(lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *LeadService) isDuplicate(email, phone string) bool {
	emailLower := strings.ToLower(email)
	phoneDigits := digitsOnly(phone)
	for _, l := range s.Repo.All() {
		if strings.ToLower(l.Email) == emailLower {
			return true
		}
		if phoneDigits != "" && digitsOnly(l.Phone) == phoneDigits {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UpdateStatus moves the lead to any of the five pipeline stages. No-op when
// the id is unknown.
func (s *LeadService) UpdateStatus(id string, status models.LeadStatus) (*models.Lead, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.Repo.Update(id, func(l *models.Lead) {
		l.Status = status
	})
}

func (s *LeadService) Delete(id string) error {
	return s.Repo.Delete(id)
}
