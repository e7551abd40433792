package models

// LeadStatus defines the pipeline stages of a lead.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadWon       LeadStatus = "won"
	LeadLost      LeadStatus = "lost"
)

// Any-to-any transitions are allowed between these values; only membership
// is checked at the boundary.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadWon, LeadLost:
		return true
	}
	return false
}

// Lead is a prospect record in the commercial pipeline.
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Company   string     `json:"company"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Status    LeadStatus `json:"status"`
	Source    string     `json:"source,omitempty"`
	CreatedAt string     `json:"createdAt"`
}
