// Package mail envía los correos transaccionales de la aplicación:
// recuperación de credenciales, aviso de vencimiento y solicitud de soporte.
//
// Ningún envío devuelve error de Go: el resultado siempre es un Result.
package mail

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
)

// Message correo listo para el proveedor.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender puerto del proveedor de correo (Resend en producción).
type Sender interface {
	Send(ctx context.Context, msg Message) (id string, err error)
}

// Result resultado estructurado de un envío.
type Result struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Config remitente y buzón de soporte.
type Config struct {
	AppName   string
	From      string
	SupportTo string
}

// Service arma y envía los correos. Con sender nil responde ErrMailNotConfigured.
type Service struct {
	sender Sender
	cfg    Config
	now    func() time.Time
	log    zerolog.Logger
}

// NewService construye el servicio.
func NewService(sender Sender, cfg Config, log zerolog.Logger) *Service {
	if cfg.AppName == "" {
		cfg.AppName = "Gestione Sindacale"
	}
	return &Service{sender: sender, cfg: cfg, now: time.Now, log: log}
}

// Configured indica si hay proveedor de correo.
func (s *Service) Configured() bool {
	return s != nil && s.sender != nil
}

// SupportRequest datos del formulario de contacto.
type SupportRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Sede    string `json:"sede"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendPasswordReset envía el correo de recuperación de credenciales.
func (s *Service) SendPasswordReset(ctx context.Context, to, userName, link string) Result {
	return s.send(ctx, "password-reset", passwordResetTmpl, Message{
		From:    "Supporto " + s.cfg.AppName + " <" + s.cfg.From + ">",
		To:      []string{to},
		Subject: "Recupero Credenziali - " + s.cfg.AppName,
	}, map[string]any{
		"Heading":  s.cfg.AppName,
		"UserName": userName,
		"Link":     link,
	})
}

// SendDeadlineAlert avisa de una pratica en vencimiento crítico.
func (s *Service) SendDeadlineAlert(ctx context.Context, to []string, userName, caseTitle, deadline, priority string) Result {
	return s.send(ctx, "deadline-alert", deadlineAlertTmpl, Message{
		From:    "Alert Scadenze " + s.cfg.AppName + " <" + s.cfg.From + ">",
		To:      to,
		Subject: "SCADENZA URGENTE: " + caseTitle,
	}, map[string]any{
		"Heading":   "Avviso Scadenza Pratica",
		"UserName":  userName,
		"CaseTitle": caseTitle,
		"Deadline":  deadline,
		"Priority":  priority,
	})
}

// SendSupportRequest reenvía el formulario de contacto al buzón de soporte.
func (s *Service) SendSupportRequest(ctx context.Context, req SupportRequest) Result {
	return s.send(ctx, "support-request", supportRequestTmpl, Message{
		From:    "Contact Form " + s.cfg.AppName + " <" + s.cfg.From + ">",
		To:      []string{s.cfg.SupportTo},
		ReplyTo: req.Email,
		Subject: "[SUPPORTO] " + req.Subject,
	}, map[string]any{
		"Heading": "Richiesta Supporto " + s.cfg.AppName,
		"Name":    req.Name,
		"Email":   req.Email,
		"Sede":    req.Sede,
		"Subject": req.Subject,
		"Message": req.Message,
	})
}

func (s *Service) send(ctx context.Context, kind string, tmpl *template.Template, msg Message, data map[string]any) Result {
	if !s.Configured() {
		s.log.Warn().Str("template", kind).Msg("correo no enviado: proveedor no configurado")
		return Result{Error: domain.ErrMailNotConfigured.Error()}
	}
	data["AppName"] = s.cfg.AppName
	data["Year"] = s.now().Year()

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log.Error().Err(err).Str("template", kind).Msg("render de correo")
		return Result{Error: err.Error()}
	}
	msg.HTML = buf.String()

	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Str("template", kind).Strs("to", msg.To).Msg("envío de correo")
		return Result{Error: err.Error()}
	}
	s.log.Info().Str("template", kind).Str("id", id).Msg("correo enviado")
	return Result{Success: true, ID: id}
}
