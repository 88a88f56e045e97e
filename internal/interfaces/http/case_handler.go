package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// CaseHandler maneja las peticiones HTTP de pratiche (protegido).
type CaseHandler struct {
	uc      *usecase.CaseUseCase
	reports *usecase.ReportUseCase
}

// NewCaseHandler construye el handler.
func NewCaseHandler(uc *usecase.CaseUseCase, reports *usecase.ReportUseCase) *CaseHandler {
	return &CaseHandler{uc: uc, reports: reports}
}

// List GET /api/cases?status=&membroId=
// Cada carga ejecuta el escaneo de vencimientos de la sede.
func (h *CaseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetSedeID(c), c.Query("status"), c.Query("membroId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/cases/:id
func (h *CaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetSedeID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/cases
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var in entity.Case
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/cases/:id
func (h *CaseHandler) Update(c *fiber.Ctx) error {
	var in entity.Case
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MoveStatus PATCH /api/cases/:id/status
func (h *CaseHandler) MoveStatus(c *fiber.Ctx) error {
	var in dto.CaseStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.MoveStatus(c.Context(), GetActor(c), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/cases/:id
func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF GET /api/cases/:id/pdf
func (h *CaseHandler) PDF(c *fiber.Ctx) error {
	pdf, name, err := h.reports.CaseSheet(c.Context(), GetSedeID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, name)
}

// Report GET /api/cases/report.pdf
func (h *CaseHandler) Report(c *fiber.Ctx) error {
	pdf, name, err := h.reports.CasesReport(c.Context(), GetSedeID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, name)
}
