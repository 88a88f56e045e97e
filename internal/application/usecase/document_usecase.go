package usecase

import (
	"context"

	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// DocumentFilter filtros opcionales del archivio.
type DocumentFilter struct {
	MemberID string
	CaseID   string
}

// DocumentUseCase casos de uso del archivio documental.
type DocumentUseCase struct {
	store *tenantstore.Store
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(store *tenantstore.Store) *DocumentUseCase {
	return &DocumentUseCase{store: store}
}

// List documentos de la sede. Con withData=false se omite el contenido.
func (uc *DocumentUseCase) List(ctx context.Context, sedeID string, f DocumentFilter, withData bool) ([]entity.Document, error) {
	all, err := uc.store.ListDocuments(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Document, 0, len(all))
	for _, d := range all {
		if f.MemberID != "" && d.AssociatedMemberID != f.MemberID {
			continue
		}
		if f.CaseID != "" && d.AssociatedCaseID != f.CaseID {
			continue
		}
		if !withData {
			d.Data = ""
		}
		out = append(out, d)
	}
	return out, nil
}

// Get documento con contenido; ErrNotFound si no es de la sede.
func (uc *DocumentUseCase) Get(ctx context.Context, sedeID, id string) (*entity.Document, error) {
	return notFoundIfNil(uc.store.GetDocument(ctx, sedeID, id))
}

// Create archiva un documento. El tamaño se calcula del contenido.
func (uc *DocumentUseCase) Create(ctx context.Context, actor entity.Actor, in entity.Document) (*entity.Document, error) {
	if err := entity.ValidateDocument(&in); err != nil {
		return nil, err
	}
	size, err := blobSize(in.Data)
	if err != nil {
		v := domain.NewValidationError()
		v.Add("data", "Formato non valido")
		return nil, v
	}
	if in.Type == "" {
		in.Type = "Documento"
	}
	in.ID = ""
	in.Size = sizeLabel(size)
	in.DateAdded = uc.store.Now()
	if _, err := uc.store.SaveDocument(ctx, &in, actor); err != nil {
		return nil, err
	}
	return &in, nil
}

// Delete elimina el documento. Un id de otra sede devuelve ErrNotFound.
func (uc *DocumentUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	removed, err := uc.store.DeleteDocument(ctx, id, actor)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}
