package utils

import (
	"craftopia/config"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEnrollmentReceipt emails a payment receipt to the student. Best-effort:
// callers log the error and carry on. Skipped when no API key is configured.
func SendEnrollmentReceipt(email, className string, amount float64) error {
	if config.AppConfig.SendgridApiKey == "" {
		return nil
	}

	from := mail.NewEmail("Craftopia", config.AppConfig.EmailSender)
	to := mail.NewEmail("", email)
	subject := "Your Craftopia enrollment is confirmed"

	plain := fmt.Sprintf("We received your payment of $%.2f for %s. See you in class!", amount, className)
	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2>Enrollment confirmed</h2>
					<p>We received your payment of <b>$%.2f</b> for <b>%s</b>.</p>
					<p>See you in class!</p>
				</div>
			</body>
		</html>`, amount, className)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
