package repositories

import (
	"sync"

	"itacatech/internal/models"
)

// AlertRepository holds the notification feed. Alerts are intentionally
// ephemeral: the feed is reseeded on every process start and never written
// to the document store.
type AlertRepository struct {
	mu     sync.Mutex
	alerts []models.Alert
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{alerts: seedAlerts()}
}

func seedAlerts() []models.Alert {
	return []models.Alert{
		{ID: "1", Type: models.AlertOpportunity, Message: "Volatilidade do Mercado: Alta demanda detectada no setor Financeiro.", Time: "Há 30 min"},
		{ID: "2", Type: models.AlertRisk, Message: "Atenção: Queda na taxa de abertura de e-mails em 5%.", Time: "Há 2 horas"},
		{ID: "3", Type: models.AlertInfo, Message: "Nova oportunidade de investimento em ferramentas de IA disponível.", Time: "Ontem"},
	}
}

// All returns a copy of the feed, newest first.
func (r *AlertRepository) All() []models.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Alert, len(r.alerts))
	copy(out, r.alerts)
	return out
}

// Insert prepends the alert to the feed.
func (r *AlertRepository) Insert(alert models.Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append([]models.Alert{alert}, r.alerts...)
}

// Delete removes the matching alert. No-op when the id is unknown.
func (r *AlertRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return
		}
	}
}
