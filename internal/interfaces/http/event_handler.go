package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// EventHandler calendario de la sede (protegido).
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// List GET /api/events?from=&to=
func (h *EventHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetSedeID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/events
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in entity.CalendarEvent
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/events/:id
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in entity.CalendarEvent
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/events/:id
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
