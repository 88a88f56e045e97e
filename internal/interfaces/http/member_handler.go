package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// MemberHandler maneja las peticiones HTTP de iscritti (protegido).
type MemberHandler struct {
	uc      *usecase.MemberUseCase
	reports *usecase.ReportUseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *usecase.MemberUseCase, reports *usecase.ReportUseCase) *MemberHandler {
	return &MemberHandler{uc: uc, reports: reports}
}

// List GET /api/members?q=
func (h *MemberHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetSedeID(c), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/members/:id
func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.Get(c.Context(), GetSedeID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(m)
}

// Create POST /api/members
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var in entity.Member
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// Update PUT /api/members/:id
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	var in entity.Member
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(m)
}

// Delete DELETE /api/members/:id
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF GET /api/members/:id/pdf
func (h *MemberHandler) PDF(c *fiber.Ctx) error {
	pdf, name, err := h.reports.MemberSheet(c.Context(), GetSedeID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, name)
}

// Report GET /api/members/report.pdf
func (h *MemberHandler) Report(c *fiber.Ctx) error {
	pdf, name, err := h.reports.MembersReport(c.Context(), GetSedeID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, name)
}
