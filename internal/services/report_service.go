package services

import (
	"math"
	"time"

	"itacatech/internal/models"
)

// PipelineSummary is the dashboard aggregation over the current collections.
type PipelineSummary struct {
	TotalLeads        int                       `json:"totalLeads"`
	LeadsByStatus     map[models.LeadStatus]int `json:"leadsByStatus"`
	WonLeads          int                       `json:"wonLeads"`
	ConversionRate    float64                   `json:"conversionRate"`
	ScheduledMeetings int                       `json:"scheduledMeetings"`
	PendingTasks      int                       `json:"pendingTasks"`
	SalesGoals        models.SalesGoals         `json:"salesGoals"`
}

// WeeklyReport summarizes productivity over the last seven days.
type WeeklyReport struct {
	TasksThisWeek         int                  `json:"tasksThisWeek"`
	CompletedTasks        int                  `json:"completedTasks"`
	CompletionRate        int                  `json:"completionRate"`
	HighPriorityCompleted int                  `json:"highPriorityCompleted"`
	NewAppointments       int                  `json:"newAppointments"`
	Appointments          []models.Appointment `json:"appointments"`
	GeneratedAt           string               `json:"generatedAt"`
}

// ReportService derives read-only views; all filtering happens here, not in
// the repositories.
type ReportService struct {
	Leads        *LeadService
	Tasks        *TaskService
	Appointments *AppointmentService
	Settings     *SettingsService
}

func NewReportService(leads *LeadService, tasks *TaskService, appointments *AppointmentService, settings *SettingsService) *ReportService {
	return &ReportService{Leads: leads, Tasks: tasks, Appointments: appointments, Settings: settings}
}

func (s *ReportService) Summary() PipelineSummary {
	leads := s.Leads.List()
	byStatus := map[models.LeadStatus]int{
		models.LeadNew:       0,
		models.LeadContacted: 0,
		models.LeadQualified: 0,
		models.LeadWon:       0,
		models.LeadLost:      0,
	}
	for _, l := range leads {
		byStatus[l.Status]++
	}

	conversion := 0.0
	if len(leads) > 0 {
		conversion = math.Round(float64(byStatus[models.LeadWon])/float64(len(leads))*1000) / 10
	}

	scheduled := 0
	for _, a := range s.Appointments.List() {
		if a.Status == models.AppointmentScheduled {
			scheduled++
		}
	}

	pending := 0
	for _, t := range s.Tasks.Repo.All() {
		if t.Status == models.TaskPending {
			pending++
		}
	}

	return PipelineSummary{
		TotalLeads:        len(leads),
		LeadsByStatus:     byStatus,
		WonLeads:          byStatus[models.LeadWon],
		ConversionRate:    conversion,
		ScheduledMeetings: scheduled,
		PendingTasks:      pending,
		SalesGoals:        s.Settings.Get().SalesGoals,
	}
}

func (s *ReportService) Weekly(now time.Time) WeeklyReport {
	var (
		tasksThisWeek int
		completed     int
		highCompleted int
	)
	for _, t := range s.Tasks.Repo.All() {
		if !withinWeek(now, t.DueDate) {
			continue
		}
		tasksThisWeek++
		if t.Status == models.TaskCompleted {
			completed++
			if t.Priority == models.PriorityHigh {
				highCompleted++
			}
		}
	}

	rate := 0
	if tasksThisWeek > 0 {
		rate = int(math.Round(float64(completed) / float64(tasksThisWeek) * 100))
	}

	var weekAppointments []models.Appointment
	for _, a := range s.Appointments.List() {
		if withinWeek(now, a.Date) {
			weekAppointments = append(weekAppointments, a)
		}
	}

	return WeeklyReport{
		TasksThisWeek:         tasksThisWeek,
		CompletedTasks:        completed,
		CompletionRate:        rate,
		HighPriorityCompleted: highCompleted,
		NewAppointments:       len(weekAppointments),
		Appointments:          weekAppointments,
		GeneratedAt:           now.Format("2006-01-02"),
	}
}

// withinWeek accepts dates at most seven days away from now, either side.
func withinWeek(now time.Time, dateStr string) bool {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return false
	}
	diff := now.Sub(date)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 7*24*time.Hour
}
