package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestione-sindacale/internal/application/analytics"
	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del cruscotto.
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	reports *usecase.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, reports *usecase.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reports: reports}
}

// GetSummary devuelve los contadores de la sede y la actividad reciente.
// GET /api/dashboard/summary
//
// El cálculo ejecuta antes el escaneo de vencimientos, así el contador
// de notificaciones no leídas ya incluye los promemoria del día.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// Report GET /api/dashboard/report.pdf
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	pdf, name, err := h.reports.DashboardReport(c.Context(), summary)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, pdf, name)
}
