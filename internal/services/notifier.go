package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

const maintenanceEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 600px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
</style>
</head>
<body>
  <div class="container">
    <h2>New Maintenance Request</h2>
    <ul>
      <li><strong>Title:</strong> %s</li>
      <li><strong>Unit:</strong> %s</li>
      <li><strong>Priority:</strong> %s</li>
      <li><strong>Submitted by:</strong> %s</li>
      <li><strong>Date:</strong> %s</li>
    </ul>
    <p>%s</p>
  </div>
</body>
</html>`

// Notifier pushes out-of-band notifications. Failures never fail the
// triggering request; they are logged and dropped.
type Notifier interface {
	MaintenanceRequestCreated(ctx context.Context, m *models.MaintenanceRequest)
}

type sendgridNotifier struct {
	client    *sendgrid.Client
	fromEmail string
	toEmail   string
}

// NewSendgridNotifier emails the building manager whenever a maintenance
// request is lodged.
func NewSendgridNotifier(apiKey, fromEmail, toEmail string) Notifier {
	return &sendgridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

func (n *sendgridNotifier) MaintenanceRequestCreated(ctx context.Context, m *models.MaintenanceRequest) {
	from := mail.NewEmail("Strata Portal", n.fromEmail)
	to := mail.NewEmail("Building Manager", n.toEmail)
	subject := fmt.Sprintf("Maintenance request: %s (unit %s)", m.Title, m.Unit)
	html := fmt.Sprintf(maintenanceEmailHTML,
		m.Title, m.Unit, m.Priority, m.SubmittedBy,
		m.Date.Format(dtos.DateLayout), m.Description)
	msg := mail.NewSingleEmail(from, subject, to, m.Description, html)

	resp, err := n.client.SendWithContext(ctx, msg)
	if err != nil {
		utils.Logger.WithError(err).Warn("Failed to send maintenance notification email")
		return
	}
	if resp.StatusCode >= 300 {
		utils.Logger.Warnf("Maintenance notification email rejected with status %d", resp.StatusCode)
	}
}

type nopNotifier struct{}

// NewNopNotifier is used when no SendGrid key is configured.
func NewNopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) MaintenanceRequestCreated(context.Context, *models.MaintenanceRequest) {}
