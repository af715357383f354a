// Package email sends notification emails through Resend.
//
// HTML bodies are rendered from templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/JSwartzmiller/gym/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Template names an embedded template file without its extension.
type Template string

const (
	TemplateWorkoutRecorded Template = "workout_recorded"
)

// Client wraps the Resend client. Sending is disabled unless both an API key
// and a recipient are configured.
type Client struct {
	client *resend.Client
	from   string
	to     string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{
		from:   cfg.Integration.FromEmail,
		to:     cfg.Integration.NotifyEmail,
		logger: logger,
	}
	if cfg.Integration.ResendAPIKey != "" {
		c.client = resend.NewClient(cfg.Integration.ResendAPIKey)
	}
	return c
}

// Enabled reports whether emails will actually be sent.
func (c *Client) Enabled() bool {
	return c.client != nil && c.to != ""
}

// Render executes the named template with data.
func Render(name Template, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(name)+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

// SendEmail renders a template and sends it to the configured recipient.
func (c *Client) SendEmail(subject string, name Template, data any) error {
	html, err := Render(name, data)
	if err != nil {
		return err
	}

	if !c.Enabled() {
		c.logger.Debug().
			Str("template", string(name)).
			Str("subject", subject).
			Msg("email delivery not configured, skipping send")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{c.to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
