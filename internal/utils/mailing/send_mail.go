package mailing

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

type (
	Mailer interface {
		Send(toEmail string, subject string, body string) error
	}

	smtpMailer struct {
		config MailConfig
	}
)

func NewMailer(config MailConfig) Mailer {
	return &smtpMailer{config: config}
}

func (m *smtpMailer) Send(toEmail string, subject string, body string) error {
	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP port: %w", err)
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.config.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// ShareListBody renders the HTML body for a share-link notification.
func ShareListBody(listName string, shareLink string) string {
	return `
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #f5f5f5;">
			<h2 style="color: #333; text-align: center;">` + listName + `</h2>
			<p>Hello,</p>
			<p>A shopping list has been shared with you. Open it with the link below:</p>
			<p style="text-align: center;"><a href="` + shareLink + `" style="display: inline-block; padding: 10px 20px; background-color: #4CAF50; color: #fff; text-decoration: none; border-radius: 5px;">Open shopping list</a></p>
			<p>Happy shopping!</p>
		</div>
	`
}
