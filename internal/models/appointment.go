package models

// AppointmentStatus defines the lifecycle of a scheduled meeting.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a client meeting on the agenda.
type Appointment struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"clientName"`
	ClientEmail string            `json:"clientEmail"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
}

// AppointmentUpdate carries a partial edit; nil fields stay untouched.
type AppointmentUpdate struct {
	ClientName  *string            `json:"clientName,omitempty"`
	ClientEmail *string            `json:"clientEmail,omitempty"`
	Date        *string            `json:"date,omitempty"`
	Time        *string            `json:"time,omitempty"`
	Status      *AppointmentStatus `json:"status,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}
