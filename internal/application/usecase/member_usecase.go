package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// MemberUseCase casos de uso de iscritti.
type MemberUseCase struct {
	store *tenantstore.Store
	loc   *time.Location
}

// NewMemberUseCase construye el caso de uso.
func NewMemberUseCase(store *tenantstore.Store, loc *time.Location) *MemberUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &MemberUseCase{store: store, loc: loc}
}

// List iscritti de la sede. q filtra por nombre completo o codice fiscale.
func (uc *MemberUseCase) List(ctx context.Context, sedeID, q string) ([]entity.Member, error) {
	all, err := uc.store.ListMembers(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return all, nil
	}
	out := make([]entity.Member, 0)
	for _, m := range all {
		name := strings.ToLower(m.FirstName + " " + m.LastName)
		if strings.Contains(name, q) ||
			strings.Contains(strings.ToLower(m.FullName()), q) ||
			strings.Contains(strings.ToLower(m.TaxID), q) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Get iscritto por id; ErrNotFound si no es de la sede.
func (uc *MemberUseCase) Get(ctx context.Context, sedeID, id string) (*entity.Member, error) {
	return notFoundIfNil(uc.store.GetMember(ctx, sedeID, id))
}

// Create valida y da de alta un iscritto con los valores iniciales:
// inscripción hoy, cuota activa, estado activo y nota de autoría.
func (uc *MemberUseCase) Create(ctx context.Context, actor entity.Actor, in entity.Member) (*entity.Member, error) {
	if err := entity.ValidateMember(&in); err != nil {
		return nil, err
	}
	now := uc.store.Now()
	in.ID = ""
	in.EnrollmentDate = today(now, uc.loc)
	in.DuesActive = true
	in.Status = entity.MemberStatusActive
	if in.Role == "" {
		in.Role = entity.MemberRoleEmployee
	}
	in.Note = "Creato da " + actor.Name + " il " + now.In(uc.loc).Format("02/01/2006")
	in.History = []entity.MemberHistoryEntry{{Date: now, Action: "Iscrizione"}}
	if _, err := uc.store.SaveMember(ctx, &in, actor); err != nil {
		return nil, err
	}
	return &in, nil
}

// Update reemplaza la ficha conservando alta, nota e historial.
func (uc *MemberUseCase) Update(ctx context.Context, actor entity.Actor, id string, in entity.Member) (*entity.Member, error) {
	existing, err := uc.Get(ctx, actor.SedeID, id)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateMember(&in); err != nil {
		return nil, err
	}
	in.ID = existing.ID
	if in.EnrollmentDate == "" {
		in.EnrollmentDate = existing.EnrollmentDate
	}
	if in.Status == "" {
		in.Status = existing.Status
	}
	if in.Role == "" {
		in.Role = existing.Role
	}
	if in.Note == "" {
		in.Note = existing.Note
	}
	in.History = append(existing.History, entity.MemberHistoryEntry{Date: uc.store.Now(), Action: "Modifica anagrafica"})
	if _, err := uc.store.SaveMember(ctx, &in, actor); err != nil {
		return nil, err
	}
	return &in, nil
}

// Delete elimina el iscritto. Un id de otra sede no se toca y devuelve ErrNotFound.
func (uc *MemberUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	removed, err := uc.store.DeleteMember(ctx, id, actor)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}
