package models

// AlertType classifies entries on the notification feed.
type AlertType string

const (
	AlertOpportunity AlertType = "opportunity"
	AlertRisk        AlertType = "risk"
	AlertInfo        AlertType = "info"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertOpportunity, AlertRisk, AlertInfo:
		return true
	}
	return false
}

// Alert is an ephemeral notification; the feed does not survive a restart.
type Alert struct {
	ID      string    `json:"id"`
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
	Time    string    `json:"time"`
	IsRead  bool      `json:"isRead,omitempty"`
}
