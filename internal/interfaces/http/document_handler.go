package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// DocumentHandler archivio documental (protegido).
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// List GET /api/documents?membroId=&praticaId=
// El listado no incluye el contenido; se descarga con GetByID.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetSedeID(c), usecase.DocumentFilter{
		MemberID: c.Query("membroId"),
		CaseID:   c.Query("praticaId"),
	}, false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/documents/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetSedeID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/documents
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in entity.Document
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
