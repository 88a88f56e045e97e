package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/mail"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// SupportUseCase formulario de asistencia.
type SupportUseCase struct {
	mailer *mail.Service
}

// NewSupportUseCase construye el caso de uso.
func NewSupportUseCase(mailer *mail.Service) *SupportUseCase {
	return &SupportUseCase{mailer: mailer}
}

// Contact valida el formulario y lo reenvía al buzón de soporte.
func (uc *SupportUseCase) Contact(ctx context.Context, in dto.SupportRequest) (mail.Result, error) {
	v := domain.NewValidationError()
	if strings.TrimSpace(in.Name) == "" {
		v.Add("nome", "Campo obbligatorio")
	}
	if !entity.IsValidEmail(in.Email) {
		v.Add("email", "Email non valida")
	}
	if strings.TrimSpace(in.Subject) == "" {
		v.Add("oggetto", "Campo obbligatorio")
	}
	if strings.TrimSpace(in.Message) == "" {
		v.Add("messaggio", "Campo obbligatorio")
	}
	if err := v.OrNil(); err != nil {
		return mail.Result{}, err
	}
	return uc.mailer.SendSupportRequest(ctx, mail.SupportRequest{
		Name:    in.Name,
		Email:   in.Email,
		Sede:    in.Sede,
		Subject: in.Subject,
		Message: in.Message,
	}), nil
}
