// Package mail implementa el envío de alertas por correo vía SMTP.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/pkg/config"
)

var _ ports.MailSender = (*GomailSender)(nil)

// GomailSender implementa MailSender sobre SMTP con gomail.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendLowStockAlert envía el correo de stock crítico al email configurado en Settings.
func (s *GomailSender) SendLowStockAlert(alert ports.LowStockAlert) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", alert.To)
	m.SetHeader("Subject", fmt.Sprintf("[%s] Stock bajo: %s", alert.CompanyName, alert.ProductName))
	m.SetBody("text/html", fmt.Sprintf(
		`<p>El producto <b>%s</b> (SKU %s) quedó en <b>%d</b> unidades, por debajo del mínimo configurado de %d.</p>
<p>Repón el stock para evitar quiebres de venta.</p>`,
		alert.ProductName, alert.SKU, alert.Quantity, alert.MinThreshold,
	))
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviar alerta: %w", err)
	}
	return nil
}
