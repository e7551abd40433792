package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"itacatech/internal/gemini"
	"itacatech/internal/models"
)

const unknownCompany = "Empresa Desconhecida"

// ProspectService runs AI lead prospecting: a grounded Gemini search for
// real companies in a niche and city, defensively parsed and deduplicated
// against the existing pipeline before insertion.
type ProspectService struct {
	Client   *gemini.Client
	Settings *SettingsService
	Leads    *LeadService
}

func NewProspectService(client *gemini.Client, settings *SettingsService, leads *LeadService) *ProspectService {
	return &ProspectService{Client: client, Settings: settings, Leads: leads}
}

func prospectPrompt(niche, city string) string {
	return fmt.Sprintf(`Use o Google Search para encontrar 4 empresas REAIS e ATIVAS do setor de "%s" localizadas em "%s".

Instruções de Extração:
1. "company": Nome exato da empresa conforme listado no Google.
2. "phone": Telefone oficial (fixo ou celular) disponível publicamente. Se não houver, use "Não informado".
3. "name": Nome de um contato público (sócio, gerente ou "Comercial").
4. "email": Email público de contato ou site oficial.

Foque em PMEs locais reais.
Formate a resposta APENAS como um array JSON válido.`, niche, city)
}

// Prospect returns the leads actually added. A malformed response aborts the
// whole operation; duplicate or unidentifiable records are skipped silently.
func (s *ProspectService) Prospect(ctx context.Context, niche, city string) ([]models.Lead, error) {
	apiKey := s.Settings.ResolveAPIKey()
	if apiKey == "" {
		return nil, gemini.ErrMissingKey
	}

	contents := []gemini.Content{{
		Role:  "user",
		Parts: []gemini.Part{{Text: prospectPrompt(niche, city)}},
	}}
	raw, err := s.Client.GenerateContent(ctx, apiKey, contents, true)
	if err != nil {
		log.Printf("[ai][prospect] generate failed: %v", err)
		return nil, err
	}

	records, err := gemini.ExtractRecords(raw)
	if err != nil {
		log.Printf("[ai][prospect] parse failed: %v", err)
		return nil, err
	}

	existing := s.Leads.List()
	var added []models.Lead
	for _, rec := range records {
		lead, ok := normalizeRecord(rec, niche, city)
		if !ok || isProspectDuplicate(existing, lead) {
			continue
		}
		inserted, err := s.Leads.insert(lead)
		if err != nil {
			return added, err
		}
		added = append(added, *inserted)
		existing = append(existing, *inserted)
	}
	return added, nil
}

// normalizeRecord fills the documented fallbacks: a deterministic
// contato@<slug>.com.br address, "Não informado" phone and a generic contact
// name. Records without an identifiable company are dropped.
func normalizeRecord(rec gemini.ProspectRecord, niche, city string) (models.Lead, bool) {
	company := rec.Company
	if company == "" {
		company = unknownCompany
	}
	if company == unknownCompany {
		return models.Lead{}, false
	}

	email := rec.Email
	if email == "" || email == "Não informado" || !strings.Contains(email, "@") {
		email = fmt.Sprintf("contato@%s.com.br", companySlug(company))
	}
	name := rec.Name
	if name == "" {
		name = "Comercial"
	}
	phone := rec.Phone
	if phone == "" {
		phone = "Não informado"
	}

	return models.Lead{
		Name:    name,
		Company: company,
		Email:   email,
		Phone:   phone,
		Source:  fmt.Sprintf("Busca: %s (%s)", niche, city),
	}, true
}

// companySlug lowercases the name and keeps the first 15 alphanumeric runes.
func companySlug(company string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(company) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= 15 {
				break
			}
		}
	}
	return b.String()
}

// isProspectDuplicate matches on bidirectional case-insensitive company
// containment or exact case-insensitive email.
func isProspectDuplicate(existing []models.Lead, lead models.Lead) bool {
	company := strings.ToLower(lead.Company)
	email := strings.ToLower(lead.Email)
	for _, l := range existing {
		other := strings.ToLower(l.Company)
		if strings.Contains(other, company) || strings.Contains(company, other) {
			return true
		}
		if strings.ToLower(l.Email) == email {
			return true
		}
	}
	return false
}
