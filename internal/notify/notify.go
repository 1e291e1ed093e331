package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"estate-console/internal/alerts"
	"estate-console/internal/logger"
)

// Notifier delivers renewal alert digests to admins.
type Notifier interface {
	SendRenewalDigest(toEmail, toName string, items []alerts.StudioAlert) error
}

// SendGridNotifier sends email through SendGrid.
type SendGridNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendRenewalDigest emails one digest listing every studio that needs
// renewal attention. No-op when there is nothing to report.
func (n *SendGridNotifier) SendRenewalDigest(toEmail, toName string, items []alerts.StudioAlert) error {
	if len(items) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Rental renewals: %d studio(s) need attention", len(items))
	plainText, htmlContent := renderDigest(items)

	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func renderDigest(items []alerts.StudioAlert) (plainText, htmlContent string) {
	var plain strings.Builder
	var rows strings.Builder

	for _, item := range items {
		p := alerts.FormatMessage(item.Alert)
		fmt.Fprintf(&plain, "%s %s - %s (%s): %s\n",
			p.Icon, item.ApartmentName, item.StudioTitle, item.TenantName, item.Message)
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			p.Icon,
			html.EscapeString(item.ApartmentName),
			html.EscapeString(item.StudioTitle),
			html.EscapeString(item.TenantName),
			html.EscapeString(item.Message))
	}

	htmlContent = fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Renewal Alerts</h2>
				<table border="1" cellpadding="4">
					<tr><th></th><th>Apartment</th><th>Studio</th><th>Tenant</th><th>Status</th></tr>
					%s
				</table>
			</body>
		</html>
	`, rows.String())
	return plain.String(), htmlContent
}

// LogNotifier is the fallback when no SendGrid key is configured. It logs the
// digest instead of delivering it, so scheduled scans still surface alerts.
type LogNotifier struct{}

func (LogNotifier) SendRenewalDigest(toEmail, toName string, items []alerts.StudioAlert) error {
	for _, item := range items {
		logger.Info("Renewal alert",
			"recipient", toEmail,
			"apartment", item.ApartmentName,
			"studio", item.StudioTitle,
			"tenant", item.TenantName,
			"message", item.Message)
	}
	return nil
}
