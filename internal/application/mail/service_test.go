package mail_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-sindacale/internal/application/mail"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
)

type fakeSender struct {
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mail.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg-1", nil
}

var cfg = mail.Config{AppName: "Gestione Sindacale", From: "noreply@gs.it", SupportTo: "supporto@gs.it"}

func TestSend_SinProveedor(t *testing.T) {
	svc := mail.NewService(nil, cfg, zerolog.Nop())
	res := svc.SendPasswordReset(context.Background(), "a@b.it", "Anna", "")
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrMailNotConfigured.Error(), res.Error)
}

func TestSendSupportRequest(t *testing.T) {
	f := &fakeSender{}
	svc := mail.NewService(f, cfg, zerolog.Nop())

	res := svc.SendSupportRequest(context.Background(), mail.SupportRequest{
		Name: "Anna", Email: "anna@x.it", Subject: "Accesso", Message: "<b>non riesco</b>",
	})
	require.True(t, res.Success)
	assert.Equal(t, "msg-1", res.ID)

	require.Len(t, f.sent, 1)
	m := f.sent[0]
	assert.Equal(t, []string{"supporto@gs.it"}, m.To)
	assert.Equal(t, "anna@x.it", m.ReplyTo)
	assert.Equal(t, "[SUPPORTO] Accesso", m.Subject)
	assert.Contains(t, m.HTML, "&lt;b&gt;non riesco&lt;/b&gt;", "el contenido del usuario se escapa")
}

func TestSendDeadlineAlert(t *testing.T) {
	f := &fakeSender{}
	svc := mail.NewService(f, cfg, zerolog.Nop())

	res := svc.SendDeadlineAlert(context.Background(), []string{"owner@x.it"}, "Anna", "Ricorso INPS", "2026-10-19", "high")
	require.True(t, res.Success)
	assert.Equal(t, "SCADENZA URGENTE: Ricorso INPS", f.sent[0].Subject)
	assert.Contains(t, f.sent[0].HTML, "2026-10-19")
	assert.Contains(t, f.sent[0].HTML, "Avviso Scadenza Pratica")
}

func TestSend_ErrorDelProveedorNoSePropaga(t *testing.T) {
	svc := mail.NewService(&fakeSender{err: errors.New("429 too many requests")}, cfg, zerolog.Nop())
	res := svc.SendPasswordReset(context.Background(), "a@b.it", "Anna", "https://x/reset")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "429")
}
