// Package notification envía los correos que siguen a un pedido confirmado.
// Los fallos se registran y nunca llegan al flujo del pedido.
package notification

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/jhoicas/dulcibelle-api/internal/application/ports"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/pkg/logger"
	"github.com/jhoicas/dulcibelle-api/pkg/money"
)

//go:embed templates/*
var templateFS embed.FS

var (
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt.gotmpl"))
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html.gotmpl"))
)

// ErrAdminEmailNotConfigured se registra cuando falta ADMIN_EMAIL.
var ErrAdminEmailNotConfigured = errors.New("notification: admin email not configured")

const defaultSendTimeout = 30 * time.Second

// Config datos de la tienda usados en los correos.
type Config struct {
	ShopName    string
	AdminEmail  string
	Money       money.Formatter
	SendTimeout time.Duration
}

// Dispatcher implementa ordering.OrderPlacedHook: confirmación al cliente y alerta al admin.
type Dispatcher struct {
	mailer   ports.Mailer
	receipts ports.ReceiptGenerator
	cfg      Config
	log      *logger.Logger
}

// NewDispatcher construye el dispatcher. receipts puede ser nil (correo sin adjunto).
func NewDispatcher(mailer ports.Mailer, receipts ports.ReceiptGenerator, cfg Config, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	return &Dispatcher{mailer: mailer, receipts: receipts, cfg: cfg, log: log}
}

// OrderPlaced envía ambos correos de forma independiente.
func (d *Dispatcher) OrderPlaced(ctx context.Context, o *entity.Order, p *entity.Product) {
	if err := d.SendConfirmation(ctx, o, p); err != nil {
		d.log.Error().Err(err).Int64("order_id", o.ID).Str("to", o.Email).Msg("error enviando confirmación")
	} else {
		d.log.Info().Int64("order_id", o.ID).Str("to", o.Email).Msg("confirmación enviada")
	}

	if err := d.SendAdminAlert(ctx, o, p); err != nil {
		d.log.Error().Err(err).Int64("order_id", o.ID).Msg("error enviando alerta al admin")
	}
}

// SendConfirmation correo al cliente con cuerpo texto + HTML y el recibo PDF si se pudo generar.
func (d *Dispatcher) SendConfirmation(ctx context.Context, o *entity.Order, p *entity.Product) error {
	data := d.viewData(o, p)

	text, err := renderText("confirmation.txt.gotmpl", data)
	if err != nil {
		return err
	}
	var html bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, "confirmation.html.gotmpl", data); err != nil {
		return fmt.Errorf("notification: render html: %w", err)
	}

	msg := ports.MailMessage{
		To:       []string{o.Email},
		Subject:  fmt.Sprintf("Confirmación de pedido %s - %s", o.Number, d.cfg.ShopName),
		TextBody: text,
		HTMLBody: html.String(),
	}
	if att, ok := d.receipt(ctx, o, p); ok {
		msg.Attachments = append(msg.Attachments, att)
	}
	return d.send(ctx, msg)
}

// SendAdminAlert aviso de nuevo pedido a ADMIN_EMAIL.
func (d *Dispatcher) SendAdminAlert(ctx context.Context, o *entity.Order, p *entity.Product) error {
	if d.cfg.AdminEmail == "" {
		return ErrAdminEmailNotConfigured
	}
	text, err := renderText("admin_alert.txt.gotmpl", d.viewData(o, p))
	if err != nil {
		return err
	}
	return d.send(ctx, ports.MailMessage{
		To:       []string{d.cfg.AdminEmail},
		Subject:  fmt.Sprintf("Nuevo pedido %s - %s", o.Number, d.cfg.ShopName),
		TextBody: text,
	})
}

func (d *Dispatcher) send(ctx context.Context, msg ports.MailMessage) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	defer cancel()
	return d.mailer.Send(ctx, msg)
}

// receipt genera el adjunto; un fallo se registra y el correo sale sin él.
func (d *Dispatcher) receipt(ctx context.Context, o *entity.Order, p *entity.Product) (ports.Attachment, bool) {
	if d.receipts == nil {
		return ports.Attachment{}, false
	}
	data, err := d.receipts.GenerateOrderReceipt(ctx, o, p)
	if err != nil {
		d.log.Warn().Err(err).Int64("order_id", o.ID).Msg("recibo no generado; se envía sin adjunto")
		return ports.Attachment{}, false
	}
	return ports.Attachment{
		Filename:    ports.ReceiptFilename(o),
		ContentType: "application/pdf",
		Data:        data,
	}, true
}

type viewData struct {
	Shop      string
	Number    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Product   string
	Quantity  int
	Total     string
	StockLeft int
}

func (d *Dispatcher) viewData(o *entity.Order, p *entity.Product) viewData {
	v := viewData{
		Shop:      d.cfg.ShopName,
		Number:    o.Number,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		Quantity:  o.Quantity,
	}
	if p != nil {
		v.Product = p.Name
		v.Total = d.cfg.Money.Format(money.Total(p.Price, o.Quantity))
		v.StockLeft = p.Stock
	}
	return v
}

func renderText(name string, data viewData) (string, error) {
	var buf bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("notification: render %s: %w", name, err)
	}
	return buf.String(), nil
}
