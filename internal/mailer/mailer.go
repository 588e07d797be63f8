// Package mailer sends the inquiry notification email over SMTP.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/bizpeer/cdg-beauty/internal/config"
	"github.com/bizpeer/cdg-beauty/internal/model"
)

// Mailer delivers inquiry notifications to the active receiver.
type Mailer struct {
	cfg config.Config
}

// New creates a Mailer from the loaded configuration.
func New(cfg config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendInquiryNotification formats and sends the notification for a newly
// submitted inquiry. When mail is disabled (development), the message is
// logged instead of sent and no error is returned.
func (m *Mailer) SendInquiryNotification(to string, inq model.Inquiry) error {
	subject := fmt.Sprintf("New inquiry from %s (%s)", inq.Name, inq.Country)
	body := fmt.Sprintf(
		"A new inquiry was submitted through the website.\r\n\r\n"+
			"Name:    %s\r\nEmail:   %s\r\nCountry: %s\r\nDate:    %s\r\n\r\n%s\r\n",
		inq.Name, inq.Email, inq.Country, inq.CreatedAt.Format("2006-01-02 15:04 UTC"), inq.Message)

	if !m.cfg.MailEnabled {
		log.Printf("[MAIL] notification to %s would be sent: %s", to, subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.SMTPFrom,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	return smtp.SendMail(addr, auth, m.cfg.SMTPFrom, []string{to}, []byte(msg))
}
