package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

func TestGenerator_ProduceTodosLosPDF(t *testing.T) {
	ctx := context.Background()
	g := NewMarotoPDFGenerator()
	member := &entity.Member{FirstName: "Giulia", LastName: "Rossi", TaxID: "RSSGLU85C52H501Z", EnrollmentDate: "2026-01-10", DuesActive: true}
	c := entity.Case{
		ID: "c1", Title: "Vertenza", Status: entity.CaseStatusUrgent, Priority: entity.PriorityHigh, DueDate: "2026-10-20",
		Timeline: []entity.TimelineEvent{{Date: time.Now(), User: "Mario", Content: "Spostata in stato: URGENT"}},
	}

	outputs := map[string]func() ([]byte, error){
		"member": func() ([]byte, error) { return g.MemberSheet(ctx, "Sede Roma", member, []entity.Case{c}) },
		"case":   func() ([]byte, error) { return g.CaseSheet(ctx, "Sede Roma", &c, "Sconosciuto") },
		"members": func() ([]byte, error) {
			return g.MembersReport(ctx, "Sede Roma", []entity.Member{*member})
		},
		"cases": func() ([]byte, error) {
			return g.CasesReport(ctx, "Sede Roma", []dto.CaseReportRow{{Case: c, MemberName: "Rossi Giulia"}})
		},
		"dashboard": func() ([]byte, error) {
			return g.DashboardReport(ctx, "Sede Roma", &dto.DashboardSummaryDTO{
				TotalMembers: 1, ByStatus: []dto.StatusCountDTO{{Status: entity.CaseStatusUrgent, Count: 1}},
			})
		},
	}
	for name, gen := range outputs {
		t.Run(name, func(t *testing.T) {
			out, err := gen()
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "20/10/2026", formatDate("2026-10-20"))
	assert.Equal(t, "in attesa", formatDate("in attesa"))
	assert.Equal(t, "Urgente", statusLabel(entity.CaseStatusUrgent))
	assert.Equal(t, "boh", statusLabel("boh"))
}
