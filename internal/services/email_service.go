package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendAppointmentConfirmation(email, clientName, date, timeSlot string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendAppointmentConfirmation(email, clientName, date, timeSlot string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Reunião confirmada — ItacaTech")

	body := fmt.Sprintf(`
		<h2>Olá, %s!</h2>
		<p>Sua reunião com a equipe ItacaTech foi confirmada.</p>
		<p><strong>Data:</strong> %s<br><strong>Horário:</strong> %s</p>
		<p>Até breve,<br>Equipe ItacaTech</p>
	`, clientName, date, timeSlot)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send appointment confirmation: %w", err)
	}

	return nil
}
