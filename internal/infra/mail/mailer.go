// Package mail provides concrete implementations of the Mailer domain service.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"appcenar/config"
	"appcenar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required to build a Mailer.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the Mailer implementation selected by configuration.
// Preview mode logs the message instead of delivering it, which is the
// sensible default for local development.
func New(params Params) (service.Mailer, error) {
	cfg := params.Config.SMTP
	if cfg == nil || cfg.Preview {
		return &previewMailer{logger: params.Logger}, nil
	}
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, errors.New("smtp host and port must be provided")
	}

	return &smtpMailer{cfg: cfg}, nil
}

// smtpMailer delivers messages over plain SMTP with optional auth.
type smtpMailer struct {
	cfg *config.SMTPConfig
}

func (m *smtpMailer) SendActivation(ctx context.Context, to, name, activationURL string) error {
	subject := "Activa tu cuenta de AppCenar"
	body := fmt.Sprintf("Hola %s,\n\nGracias por registrarte en AppCenar. "+
		"Activa tu cuenta con el siguiente enlace:\n\n%s\n\n"+
		"Si no creaste esta cuenta, ignora este correo.\n", name, activationURL)

	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	subject := "Restablece tu contraseña de AppCenar"
	body := fmt.Sprintf("Hola %s,\n\nRecibimos una solicitud para restablecer tu contraseña. "+
		"Usa el siguiente enlace:\n\n%s\n\n"+
		"Si no solicitaste el cambio, ignora este correo.\n", name, resetURL)

	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.UserName != "" {
		auth = smtp.PlainAuth("", m.cfg.UserName, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}

	return nil
}

// previewMailer logs outgoing mail instead of sending it.
type previewMailer struct {
	logger *slog.Logger
}

func (m *previewMailer) SendActivation(ctx context.Context, to, name, activationURL string) error {
	m.logger.InfoContext(ctx, "preview mail: account activation",
		slog.String("to", to),
		slog.String("name", name),
		slog.String("url", activationURL))

	return nil
}

func (m *previewMailer) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	m.logger.InfoContext(ctx, "preview mail: password reset",
		slog.String("to", to),
		slog.String("name", name),
		slog.String("url", resetURL))

	return nil
}
