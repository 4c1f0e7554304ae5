package leads

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

// Notification is an internal email about an accepted lead.
type Notification struct {
	Subject  string
	Template string
	ReplyTo  string
	Data     TemplateContext
	// Text is the plain-text alternative.
	Text string
}

// Notifier tells the sales team about accepted leads.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NoopNotifier is used when Mailgun is not configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, Notification) error { return nil }

const notificationLayout = "notification"

// MailgunNotifier sends notifications through the Mailgun API.
type MailgunNotifier struct {
	cfg      config.EmailConfig
	siteName string
	log      *slog.Logger
	client   *mailgun.MailgunImpl
	render   *TemplateRenderer
}

// NewNotifier returns a MailgunNotifier when email is enabled and
// configured, a NoopNotifier otherwise.
func NewNotifier(cfg *config.Config, log *slog.Logger) (Notifier, error) {
	log = log.With(logger.Scope("leads.notifier"))
	if !cfg.Email.Enabled || !cfg.Email.IsConfigured() {
		log.Info("lead notifications disabled")
		return NoopNotifier{}, nil
	}

	renderer, err := NewTemplateRenderer(templateFS, "templates", log)
	if err != nil {
		return nil, err
	}

	return &MailgunNotifier{
		cfg:      cfg.Email,
		siteName: cfg.Site.SiteName,
		log:      log,
		client:   mailgun.NewMailgun(cfg.Email.MailgunDomain, cfg.Email.MailgunAPIKey),
		render:   renderer,
	}, nil
}

// Notify renders and sends one notification to EMAIL_NOTIFY_TO.
func (m *MailgunNotifier) Notify(ctx context.Context, n Notification) error {
	data := make(TemplateContext, len(n.Data)+3)
	for k, v := range n.Data {
		data[k] = v
	}
	data["title"] = n.Subject
	data["siteName"] = m.siteName
	data["submissionTime"] = time.Now().UTC().Format(time.RFC1123)

	html, err := m.render.Render(n.Template, notificationLayout, data)
	if err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	message := m.client.NewMessage(from, n.Subject, n.Text, m.cfg.NotifyTo)
	message.SetHtml(html)
	if n.ReplyTo != "" {
		message.SetReplyTo(n.ReplyTo)
	}

	_, messageID, err := m.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}

	m.log.Info("lead notification sent",
		slog.String("template", n.Template),
		slog.String("message_id", messageID))
	return nil
}
