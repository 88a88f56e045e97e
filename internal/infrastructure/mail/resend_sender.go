// Package mail adapta el proveedor Resend al puerto mail.Sender.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	appmail "github.com/jhoicas/gestione-sindacale/internal/application/mail"
)

var _ appmail.Sender = (*ResendSender)(nil)

// ResendSender envía correos con la API de Resend.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender devuelve nil si no hay API key: el servicio de correo lo
// interpreta como "no configurado".
func NewResendSender(apiKey string) *ResendSender {
	if apiKey == "" {
		return nil
	}
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send envía el mensaje y devuelve el id asignado por Resend.
func (s *ResendSender) Send(ctx context.Context, msg appmail.Message) (string, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}
