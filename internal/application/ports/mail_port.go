package ports

import "context"

// Attachment archivo adjunto de un correo.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MailMessage correo saliente. HTMLBody es opcional.
type MailMessage struct {
	To          []string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer define el puerto de salida para el envío de correos.
// Cualquier adaptador (SMTP, log, fake de tests) debe implementar esta interfaz.
// El contexto permite cortar envíos lentos.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
