package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/ajitashwath/dare-exchange/config"
	"github.com/ajitashwath/dare-exchange/metrics"
	"github.com/ajitashwath/dare-exchange/models"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
	}
}

// send delivers a single message. Notification delivery is best effort:
// callers run it in a goroutine and the submission response never waits on
// or reflects the outcome.
func (s *EmailService) send(kind, to, subject, body string) {
	if s.host == "" {
		log.Printf("Mail not configured, skipping %s email to %s", kind, to)
		return
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	msg := []byte(strings.TrimSpace(fmt.Sprintf(`
To: %s
MIME-version: 1.0
Content-Type: text/plain; charset="UTF-8"
Subject: %s

%s
`, to, subject, body)))

	if err := smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{to}, msg); err != nil {
		metrics.EmailsSent.WithLabelValues(kind, "error").Inc()
		log.Printf("Failed to send %s email to %s: %v", kind, to, err)
		return
	}
	metrics.EmailsSent.WithLabelValues(kind, "ok").Inc()
}

// SendAdminNotification tells the moderators about a new submission
func (s *EmailService) SendAdminNotification(dare *models.Dare) {
	subject := fmt.Sprintf("New Dare Submission: %s", dare.Title)
	body := fmt.Sprintf(
		"A new dare has been submitted and is waiting for review.\n\n"+
			"Title: %s\nSubmitted by: %s (%s)\nCollege: %s\n\n%s\n\nReview it at %s%s",
		dare.Title, dare.Name, dare.Email, dare.College, dare.DareText, config.ClientUrl, dare.URL())
	s.send("admin_notification", config.AdminEmail, subject, body)
}

// SendUserConfirmation acknowledges a submission to its author
func (s *EmailService) SendUserConfirmation(dare *models.Dare) {
	subject := fmt.Sprintf("Dare Submitted: %s", dare.Title)
	var status string
	if dare.IsApproved {
		status = "Your dare is live at " + config.ClientUrl + dare.URL()
	} else {
		status = "Your dare is under review and will be published once approved."
	}
	body := fmt.Sprintf("Hi %s,\n\nThanks for submitting \"%s\" to %s.\n\n%s\n\nStay daring!",
		dare.Name, dare.Title, "Dare Exchange", status)
	s.send("user_confirmation", dare.Email, subject, body)
}

// SendModerationNotice tells the author about an approval or rejection
func (s *EmailService) SendModerationNotice(dare *models.Dare) {
	var subject, body string
	switch {
	case dare.IsApproved:
		subject = fmt.Sprintf("Dare Approved: %s", dare.Title)
		body = fmt.Sprintf("Hi %s,\n\nYour dare \"%s\" has been approved and is now live at %s%s.",
			dare.Name, dare.Title, config.ClientUrl, dare.URL())
	case dare.Status == models.StatusRejected:
		subject = fmt.Sprintf("Dare Rejected: %s", dare.Title)
		reason := dare.RejectionReason
		if reason == "" {
			reason = "No reason was given."
		}
		body = fmt.Sprintf("Hi %s,\n\nYour dare \"%s\" was rejected.\n\nReason: %s",
			dare.Name, dare.Title, reason)
	default:
		return
	}
	s.send("moderation_notice", dare.Email, subject, body)
}

// SendContactEmail relays a contact form message to the site contact address
func (s *EmailService) SendContactEmail(name, email, subject, message string) {
	fullSubject := fmt.Sprintf("Contact Form: %s", subject)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	s.send("contact", config.ContactEmail, fullSubject, body)
}
