package ports

import (
	"context"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// ReportGenerator puerto de salida para las exportaciones PDF.
// sede es el nombre de la sede que aparece en la cabecera.
type ReportGenerator interface {
	MemberSheet(ctx context.Context, sede string, m *entity.Member, cases []entity.Case) ([]byte, error)
	CaseSheet(ctx context.Context, sede string, c *entity.Case, memberName string) ([]byte, error)
	MembersReport(ctx context.Context, sede string, members []entity.Member) ([]byte, error)
	CasesReport(ctx context.Context, sede string, rows []dto.CaseReportRow) ([]byte, error)
	DashboardReport(ctx context.Context, sede string, summary *dto.DashboardSummaryDTO) ([]byte, error)
}
