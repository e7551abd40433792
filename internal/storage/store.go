package storage

import "errors"

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("document not found")

// Store keeps one JSON document per fixed key. Writes always replace the
// whole document; there are no partial patches.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Document keys. Kept identical to the original portal's storage keys so a
// data dump from one deployment reads back in another.
const (
	KeySession      = "itaca_user"
	KeyTeam         = "itaca_team"
	KeyTasks        = "itaca_tasks"
	KeyAppointments = "itaca_appointments"
	KeyLeads        = "itaca_leads"
	KeyAPIKey       = "itaca_gemini_api_key"
	KeyRiskProfile  = "itaca_risk_profile"
	KeySalesGoals   = "itaca_sales_goals"
)
