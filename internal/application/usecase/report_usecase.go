package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/ports"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// unknownMember nombre mostrado cuando la referencia al iscritto no resuelve.
const unknownMember = "Sconosciuto"

// ReportUseCase exportaciones PDF de la sede.
type ReportUseCase struct {
	store     *tenantstore.Store
	generator ports.ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(store *tenantstore.Store, generator ports.ReportGenerator) *ReportUseCase {
	return &ReportUseCase{store: store, generator: generator}
}

// MemberSheet ficha del iscritto con sus pratiche.
func (uc *ReportUseCase) MemberSheet(ctx context.Context, sedeID, memberID string) ([]byte, string, error) {
	m, err := notFoundIfNil(uc.store.GetMember(ctx, sedeID, memberID))
	if err != nil {
		return nil, "", err
	}
	cases, err := uc.store.ListCases(ctx, sedeID)
	if err != nil {
		return nil, "", err
	}
	own := make([]entity.Case, 0)
	for _, c := range cases {
		if c.MemberID == m.ID {
			own = append(own, c)
		}
	}
	pdf, err := uc.generator.MemberSheet(ctx, uc.sedeName(ctx, sedeID), m, own)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: scheda iscritto: %w", err)
	}
	return pdf, fileName("scheda", m.LastName, m.FirstName), nil
}

// CaseSheet ficha de la pratica; el iscritto ausente se muestra como "Sconosciuto".
func (uc *ReportUseCase) CaseSheet(ctx context.Context, sedeID, caseID string) ([]byte, string, error) {
	c, err := notFoundIfNil(uc.store.GetCase(ctx, sedeID, caseID))
	if err != nil {
		return nil, "", err
	}
	name := unknownMember
	if m, err := uc.store.GetMember(ctx, sedeID, c.MemberID); err == nil && m != nil {
		name = m.FullName()
	}
	pdf, err := uc.generator.CaseSheet(ctx, uc.sedeName(ctx, sedeID), c, name)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: scheda pratica: %w", err)
	}
	return pdf, fileName("pratica", c.ID), nil
}

// MembersReport elenco de iscritti de la sede.
func (uc *ReportUseCase) MembersReport(ctx context.Context, sedeID string) ([]byte, string, error) {
	members, err := uc.store.ListMembers(ctx, sedeID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.MembersReport(ctx, uc.sedeName(ctx, sedeID), members)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: elenco iscritti: %w", err)
	}
	return pdf, "elenco_iscritti.pdf", nil
}

// CasesReport registro de pratiche con el iscritto resuelto.
func (uc *ReportUseCase) CasesReport(ctx context.Context, sedeID string) ([]byte, string, error) {
	cases, err := uc.store.ListCases(ctx, sedeID)
	if err != nil {
		return nil, "", err
	}
	members, err := uc.store.ListMembers(ctx, sedeID)
	if err != nil {
		return nil, "", err
	}
	names := make(map[string]string, len(members))
	for i := range members {
		names[members[i].ID] = members[i].FullName()
	}
	rows := make([]dto.CaseReportRow, 0, len(cases))
	for _, c := range cases {
		name, ok := names[c.MemberID]
		if !ok {
			name = unknownMember
		}
		rows = append(rows, dto.CaseReportRow{Case: c, MemberName: name})
	}
	pdf, err := uc.generator.CasesReport(ctx, uc.sedeName(ctx, sedeID), rows)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: registro pratiche: %w", err)
	}
	return pdf, "registro_pratiche.pdf", nil
}

// DashboardReport informe rápido a partir del resumen ya calculado.
func (uc *ReportUseCase) DashboardReport(ctx context.Context, summary *dto.DashboardSummaryDTO) ([]byte, string, error) {
	if summary == nil {
		return nil, "", domain.ErrInvalidInput
	}
	pdf, err := uc.generator.DashboardReport(ctx, summary.SedeName, summary)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: report dashboard: %w", err)
	}
	return pdf, "report_sede.pdf", nil
}

func (uc *ReportUseCase) sedeName(ctx context.Context, sedeID string) string {
	office, err := uc.store.GetOffice(ctx, sedeID)
	if err != nil || office == nil {
		return ""
	}
	return office.Name
}

// fileName une las partes en minúsculas con guion bajo: "scheda_rossi_mario.pdf".
func fileName(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.Join(strings.Fields(p), "_"))
		if p != "" {
			clean = append(clean, p)
		}
	}
	return strings.Join(clean, "_") + ".pdf"
}
