package services

import (
	"os"

	mailjet "github.com/mailjet/mailjet-apiv3-go"
)

// SendMail delivers a transactional email through Mailjet. Returns whether
// the message was accepted.
func SendMail(toEmail string, subject string, html string) (bool, error) {
	client := mailjet.NewMailjetClient(os.Getenv("MJ_APIKEY_PUBLIC"), os.Getenv("MJ_APIKEY_PRIVATE"))

	fromEmail := os.Getenv("MAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@primeresidency.app"
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: fromEmail,
					Name:  "PrimeResidency",
				},
				To: &mailjet.RecipientsV31{
					{Email: toEmail},
				},
				Subject:  subject,
				HTMLPart: html,
			},
		},
	}

	if _, err := client.SendMailV31(&messages); err != nil {
		return false, err
	}

	return true, nil
}
