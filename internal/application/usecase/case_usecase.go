package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestione-sindacale/internal/application/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// DeadlineScanner escaneo de vencimientos sobre una lista ya cargada.
type DeadlineScanner interface {
	ScanCases(ctx context.Context, sedeID string, cases []entity.Case, now time.Time) (deadline.Result, error)
}

// CaseUseCase casos de uso de pratiche.
type CaseUseCase struct {
	store   *tenantstore.Store
	scanner DeadlineScanner
	loc     *time.Location
	log     zerolog.Logger
}

// NewCaseUseCase construye el caso de uso. scanner puede ser nil.
func NewCaseUseCase(store *tenantstore.Store, scanner DeadlineScanner, loc *time.Location, log zerolog.Logger) *CaseUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &CaseUseCase{store: store, scanner: scanner, loc: loc, log: log}
}

// List pratiche de la sede, opcionalmente filtradas por estado o iscritto.
// Cada carga de la lista ejecuta el escaneo de vencimientos.
func (uc *CaseUseCase) List(ctx context.Context, sedeID, status, memberID string) ([]entity.Case, error) {
	all, err := uc.store.ListCases(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	if uc.scanner != nil {
		if _, err := uc.scanner.ScanCases(ctx, sedeID, all, uc.store.Now()); err != nil {
			uc.log.Warn().Err(err).Str("sede_id", sedeID).Msg("escaneo de vencimientos")
		}
	}
	if status == "" && memberID == "" {
		return all, nil
	}
	out := make([]entity.Case, 0)
	for _, c := range all {
		if status != "" && c.Status != status {
			continue
		}
		if memberID != "" && c.MemberID != memberID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Get pratica por id; ErrNotFound si no es de la sede.
func (uc *CaseUseCase) Get(ctx context.Context, sedeID, id string) (*entity.Case, error) {
	return notFoundIfNil(uc.store.GetCase(ctx, sedeID, id))
}

// Create abre una pratica: estado new, prioridad media y apertura hoy salvo
// que vengan informados.
func (uc *CaseUseCase) Create(ctx context.Context, actor entity.Actor, in entity.Case) (*entity.Case, error) {
	if in.Status == "" {
		in.Status = entity.CaseStatusNew
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}
	if err := entity.ValidateCase(&in); err != nil {
		return nil, err
	}
	now := uc.store.Now()
	in.ID = ""
	in.OpenedOn = today(now, uc.loc)
	in.Timeline = []entity.TimelineEvent{}
	if err := uc.prepareFiles(&in, actor, now); err != nil {
		return nil, err
	}
	if _, err := uc.store.SaveCase(ctx, &in, actor); err != nil {
		return nil, err
	}
	return &in, nil
}

// Update reemplaza los datos editables. La apertura y el historial no se
// pueden reescribir.
func (uc *CaseUseCase) Update(ctx context.Context, actor entity.Actor, id string, in entity.Case) (*entity.Case, error) {
	existing, err := uc.Get(ctx, actor.SedeID, id)
	if err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = existing.Status
	}
	if in.Priority == "" {
		in.Priority = existing.Priority
	}
	if err := entity.ValidateCase(&in); err != nil {
		return nil, err
	}
	now := uc.store.Now()
	in.ID = existing.ID
	in.OpenedOn = existing.OpenedOn
	in.Timeline = existing.Timeline
	in.LastModified = &now
	if in.Files == nil {
		in.Files = existing.Files
	}
	if err := uc.prepareFiles(&in, actor, now); err != nil {
		return nil, err
	}
	if _, err := uc.store.SaveCase(ctx, &in, actor); err != nil {
		return nil, err
	}
	return &in, nil
}

// MoveStatus cambia el estado (cualquier estado a cualquier estado) y agrega
// la entrada al historial. Sin cambio de estado no escribe nada.
func (uc *CaseUseCase) MoveStatus(ctx context.Context, actor entity.Actor, id, status string) (*entity.Case, error) {
	if !entity.IsValidCaseStatus(status) {
		v := domain.NewValidationError()
		v.Add("status", "Valore non ammesso")
		return nil, v
	}
	c, err := uc.Get(ctx, actor.SedeID, id)
	if err != nil {
		return nil, err
	}
	if c.Status == status {
		return c, nil
	}
	now := uc.store.Now()
	c.Status = status
	c.LastModified = &now
	c.Timeline = append(c.Timeline, entity.TimelineEvent{
		ID:      uc.store.NewID(),
		Date:    now,
		User:    actor.Name,
		Content: "Spostata in stato: " + strings.ToUpper(strings.ReplaceAll(status, "-", " ")),
	})
	if _, err := uc.store.SaveCase(ctx, c, actor); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete elimina la pratica. Un id de otra sede devuelve ErrNotFound.
func (uc *CaseUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	removed, err := uc.store.DeleteCase(ctx, id, actor)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// prepareFiles completa los metadatos del adjunto ya validado.
func (uc *CaseUseCase) prepareFiles(c *entity.Case, actor entity.Actor, now time.Time) error {
	if len(c.Files) == 0 {
		c.Files = []entity.CaseFile{}
		return nil
	}
	f := c.Files[0]
	size, err := blobSize(f.Data)
	if err != nil {
		v := domain.NewValidationError()
		v.Add("files", "Formato non valido")
		return v
	}
	if f.ID == "" {
		f.ID = uc.store.NewID()
	}
	if f.UploadedBy == "" {
		f.UploadedBy = actor.Name
	}
	if f.UploadedAt.IsZero() {
		f.UploadedAt = now
	}
	f.Size = sizeLabel(size)
	c.Files = []entity.CaseFile{f}
	return nil
}
