package mail

import (
	"context"

	"github.com/jhoicas/dulcibelle-api/internal/application/ports"
	"github.com/jhoicas/dulcibelle-api/pkg/logger"
)

// LogSender sustituye al SMTP cuando MAIL_SERVER está vacío: registra el correo y no lo envía.
type LogSender struct {
	log *logger.Logger
}

var _ ports.Mailer = (*LogSender)(nil)

// NewLogSender construye el sender.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg ports.MailMessage) error {
	s.log.Info().
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("correo no enviado (MAIL_SERVER vacío)")
	return nil
}
