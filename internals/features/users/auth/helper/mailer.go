// file: internals/features/users/auth/helper/mailer.go
package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"litefarm_backend/internals/configs"
)

// Mailer sends the two transactional messages the auth flows need. The
// SMTP implementation is swapped for a recorder in tests.
type Mailer interface {
	SendInvitation(to, firstName, farmName, joinLink string) error
	SendPasswordReset(to, firstName, resetLink string) error
}

/* =========================
   SMTP implementation
   ========================= */

type SMTPMailer struct{}

func (SMTPMailer) SendInvitation(to, firstName, farmName, joinLink string) error {
	subject := "You have been invited to join " + farmName + " on LiteFarm"
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have been invited to join %s.\nAccept the invitation here: %s\n",
		firstName, farmName, joinLink,
	)
	return send(to, subject, body)
}

func (SMTPMailer) SendPasswordReset(to, firstName, resetLink string) error {
	subject := "LiteFarm password reset"
	body := fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your account.\nReset it here: %s\n",
		firstName, resetLink,
	)
	return send(to, subject, body)
}

func send(to, subject, body string) error {
	if configs.SMTPHost == "" {
		log.Printf("[WARN] SMTP not configured, dropping mail to %s (%s)", to, subject)
		return nil
	}
	msg := strings.Join([]string{
		"From: " + configs.EmailSender,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := configs.SMTPHost + ":" + configs.SMTPPort
	var auth smtp.Auth
	if configs.SMTPUser != "" {
		auth = smtp.PlainAuth("", configs.SMTPUser, configs.SMTPPassword, configs.SMTPHost)
	}
	return smtp.SendMail(addr, auth, configs.EmailSender, []string{to}, []byte(msg))
}
