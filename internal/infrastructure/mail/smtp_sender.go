// Package mail implementa ports.Mailer sobre SMTP (gomail) y un sender de solo log.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/dulcibelle-api/internal/application/ports"
	"github.com/jhoicas/dulcibelle-api/pkg/config"
)

// SMTPSender envía correos con gomail. Cada envío abre y cierra su conexión.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

var _ ports.Mailer = (*SMTPSender)(nil)

// NewSMTPSender construye el sender desde MAIL_*.
// UseTLS = STARTTLS (587) y tiene prioridad sobre UseSSL = TLS implícito (465).
// Sin ninguno de los dos gomail igual negocia STARTTLS si el servidor lo ofrece.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	d := gomail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.UseSSL && !cfg.UseTLS
	d.TLSConfig = &tls.Config{ServerName: cfg.Server, MinVersion: tls.VersionTLS12}
	from := cfg.DefaultSender
	if from == "" {
		from = cfg.Username
	}
	return &SMTPSender{dialer: d, from: from}
}

// ImplicitTLS indica si la conexión se abre directamente sobre TLS.
func (s *SMTPSender) ImplicitTLS() bool {
	return s.dialer.SSL
}

// Send arma el mensaje y lo entrega. gomail no acepta contexto: si ctx vence antes, se devuelve ctx.Err().
func (s *SMTPSender) Send(ctx context.Context, msg ports.MailMessage) error {
	m := BuildMessage(s.from, msg)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail: enviar a %v: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mail: enviar a %v: %w", msg.To, ctx.Err())
	}
}

// BuildMessage convierte el mensaje del puerto en un gomail.Message.
func BuildMessage(from string, msg ports.MailMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}
	for _, a := range msg.Attachments {
		data := a.Data
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}))
		}
		m.Attach(a.Filename, settings...)
	}
	return m
}
