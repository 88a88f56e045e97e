package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
)

// SupportHandler modulo di contatto pubblico.
type SupportHandler struct {
	uc *usecase.SupportUseCase
}

// NewSupportHandler construye el handler.
func NewSupportHandler(uc *usecase.SupportUseCase) *SupportHandler {
	return &SupportHandler{uc: uc}
}

// Contact POST /api/support
// El fallo del proveedor de correo se devuelve como {success:false, error} con 502.
func (h *SupportHandler) Contact(c *fiber.Ctx) error {
	var in dto.SupportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Contact(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	if !res.Success {
		return c.Status(fiber.StatusBadGateway).JSON(res)
	}
	return c.JSON(res)
}
