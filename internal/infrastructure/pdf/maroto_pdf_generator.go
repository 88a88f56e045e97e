// Package pdf implementa las exportaciones imprimibles de la sede con Maroto v2:
// ficha de iscritto, ficha de pratica, elenco iscritti, registro pratiche y
// report rápido del dashboard.
//
// Todas las páginas comparten la misma estructura A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Gestione Sindacale + Sede  │  Título + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: bloques etiqueta/valor o tabla                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de uso interno                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

const appName = "Gestione Sindacale"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 138}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas italianas de estados y prioridades.
var (
	statusLabels = map[string]string{
		entity.CaseStatusNew:               "Nuova",
		entity.CaseStatusInProgress:        "In lavorazione",
		entity.CaseStatusAwaitingDocuments: "In attesa documenti",
		entity.CaseStatusUnderReview:       "In revisione",
		entity.CaseStatusCompleted:         "Completata",
		entity.CaseStatusArchived:          "Archiviata",
		entity.CaseStatusUrgent:            "Urgente",
	}
	priorityLabels = map[string]string{
		entity.PriorityLow:    "Bassa",
		entity.PriorityMedium: "Media",
		entity.PriorityHigh:   "Alta",
	}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{now: time.Now} }

// MemberSheet ficha anagráfica del iscritto con sus pratiche.
func (g *MarotoPDFGenerator) MemberSheet(_ context.Context, sede string, m *entity.Member, cases []entity.Case) ([]byte, error) {
	doc := g.newDocument("Scheda Iscritto", sede)
	doc.AddRows(sectionTitle(m.FullName()))
	doc.AddRows(
		fieldRow("Codice fiscale", m.TaxID, "Data di nascita", formatDate(m.BirthDate)),
		fieldRow("Telefono", m.Phone, "Email", nonEmpty(m.Email, "—")),
		fieldRow("Ruolo", memberRoleLabel(m.Role), "Stato", memberStatusLabel(m.Status)),
		fieldRow("Iscrizione", formatDate(m.EnrollmentDate), "Inizio collaborazione", formatDate(m.CollaborationStart)),
		fieldRow("Quota", duesLabel(m.DuesActive), "", ""),
	)
	if m.Note != "" {
		doc.AddRows(noteRow(m.Note))
	}

	doc.AddRows(line.NewRow(4))
	doc.AddRows(sectionTitle(fmt.Sprintf("Pratiche collegate (%d)", len(cases))))
	if len(cases) == 0 {
		doc.AddRows(emptyRow("Nessuna pratica collegata."))
	} else {
		doc.AddRows(tableHeaderRow([]column{{"Titolo", 6}, {"Stato", 3}, {"Scadenza", 3}}))
		for _, c := range cases {
			doc.AddRows(tableRow([]cell{
				{c.Title, 6, align.Left},
				{statusLabel(c.Status), 3, align.Left},
				{formatDate(c.DueDate), 3, align.Center},
			}))
		}
	}
	return g.render(doc)
}

// CaseSheet ficha de la pratica con su historial.
func (g *MarotoPDFGenerator) CaseSheet(_ context.Context, sede string, c *entity.Case, memberName string) ([]byte, error) {
	doc := g.newDocument("Scheda Pratica", sede)
	doc.AddRows(sectionTitle(c.Title))
	doc.AddRows(
		fieldRow("Iscritto", memberName, "Stato", statusLabel(c.Status)),
		fieldRow("Apertura", formatDate(c.OpenedOn), "Scadenza", formatDate(c.DueDate)),
		fieldRow("Priorità", priorityLabel(c.Priority), "Allegato", attachmentLabel(c)),
	)
	if c.Description != "" {
		doc.AddRows(noteRow(c.Description))
	}

	doc.AddRows(line.NewRow(4))
	doc.AddRows(sectionTitle("Cronologia"))
	if len(c.Timeline) == 0 {
		doc.AddRows(emptyRow("Nessun evento registrato."))
	} else {
		doc.AddRows(tableHeaderRow([]column{{"Data", 3}, {"Operatore", 3}, {"Evento", 6}}))
		for _, e := range c.Timeline {
			doc.AddRows(tableRow([]cell{
				{e.Date.Format("02/01/2006 15:04"), 3, align.Left},
				{e.User, 3, align.Left},
				{e.Content, 6, align.Left},
			}))
		}
	}
	return g.render(doc)
}

// MembersReport elenco tabular de iscritti.
func (g *MarotoPDFGenerator) MembersReport(_ context.Context, sede string, members []entity.Member) ([]byte, error) {
	doc := g.newDocument("Elenco Iscritti", sede)
	doc.AddRows(sectionTitle(fmt.Sprintf("Totale iscritti: %d", len(members))))
	doc.AddRows(tableHeaderRow([]column{{"Cognome e nome", 4}, {"Codice fiscale", 3}, {"Telefono", 2}, {"Iscrizione", 2}, {"Quota", 1}}))
	for _, m := range members {
		doc.AddRows(tableRow([]cell{
			{m.FullName(), 4, align.Left},
			{m.TaxID, 3, align.Left},
			{m.Phone, 2, align.Left},
			{formatDate(m.EnrollmentDate), 2, align.Center},
			{yesNo(m.DuesActive), 1, align.Center},
		}))
	}
	return g.render(doc)
}

// CasesReport registro de pratiche.
func (g *MarotoPDFGenerator) CasesReport(_ context.Context, sede string, rows []dto.CaseReportRow) ([]byte, error) {
	doc := g.newDocument("Registro Pratiche", sede)
	doc.AddRows(sectionTitle(fmt.Sprintf("Totale pratiche: %d", len(rows))))
	doc.AddRows(tableHeaderRow([]column{{"Titolo", 4}, {"Iscritto", 3}, {"Stato", 2}, {"Priorità", 1}, {"Scadenza", 2}}))
	for _, r := range rows {
		doc.AddRows(tableRow([]cell{
			{r.Case.Title, 4, align.Left},
			{r.MemberName, 3, align.Left},
			{statusLabel(r.Case.Status), 2, align.Left},
			{priorityLabel(r.Case.Priority), 1, align.Center},
			{formatDate(r.Case.DueDate), 2, align.Center},
		}))
	}
	return g.render(doc)
}

// DashboardReport report rápido con los indicadores del dashboard.
func (g *MarotoPDFGenerator) DashboardReport(_ context.Context, sede string, s *dto.DashboardSummaryDTO) ([]byte, error) {
	doc := g.newDocument("Report Sede", sede)
	doc.AddRows(sectionTitle("Indicatori"))
	doc.AddRows(
		fieldRow("Iscritti totali", strconv.Itoa(s.TotalMembers), "Quota attiva", strconv.Itoa(s.ActiveDuesMembers)),
		fieldRow("Pratiche aperte", strconv.Itoa(s.OpenCases), "Pratiche urgenti", strconv.Itoa(s.UrgentCases)),
		fieldRow("Notifiche non lette", strconv.Itoa(s.UnreadNotifications), "", ""),
	)
	doc.AddRows(line.NewRow(4))
	doc.AddRows(sectionTitle("Pratiche per stato"))
	doc.AddRows(tableHeaderRow([]column{{"Stato", 8}, {"Numero", 4}}))
	for _, st := range s.ByStatus {
		doc.AddRows(tableRow([]cell{
			{statusLabel(st.Status), 8, align.Left},
			{strconv.Itoa(st.Count), 4, align.Right},
		}))
	}
	return g.render(doc)
}

// ── Documento ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) newDocument(title, sede string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(appName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(title, sede, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(line.NewRow(3))
	return m
}

func (g *MarotoPDFGenerator) render(m core.Maroto) ([]byte, error) {
	m.AddRows(line.NewRow(6))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Documento generato da "+appName+" ad uso interno della sede. Contiene dati personali: non divulgare.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: aplicación + sede (izq) y título + fecha (der).
func headerRow(title, sede string, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sede, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Data: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1}),
	))
}

// fieldRow: dos pares etiqueta/valor por fila.
func fieldRow(l1, v1, l2, v2 string) core.Row {
	pair := func(label, value string) core.Col {
		if label == "" {
			return col.New(6)
		}
		return col.New(6).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 0.5}),
			text.New(nonEmpty(value, "—"), props.Text{Style: fontstyle.Bold, Size: 9, Top: 4}),
		)
	}
	return row.New(10).Add(pair(l1, v1), pair(l2, v2))
}

func noteRow(s string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Note", props.Text{Size: 7, Color: colorGray, Top: 0.5}),
		text.New(s, props.Text{Size: 8, Top: 4}),
	))
}

func emptyRow(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

type column struct {
	label string
	size  int
}

type cell struct {
	value string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de tabla en negrita con el color primario.
func tableHeaderRow(cols []column) core.Row {
	r := row.New(8)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableRow(cells []cell) core.Row {
	r := row.New(7)
	for _, c := range cells {
		r.Add(col.New(c.size).Add(text.New(nonEmpty(c.value, "—"), props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDate convierte "2006-01-02" en "02/01/2006"; otros valores se devuelven tal cual.
func formatDate(s string) string {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

func statusLabel(s string) string   { return labelOr(statusLabels, s) }
func priorityLabel(s string) string { return labelOr(priorityLabels, s) }

func labelOr(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

func memberRoleLabel(r string) string {
	if r == entity.MemberRoleManager {
		return "Quadro"
	}
	return "Dipendente"
}

func memberStatusLabel(s string) string {
	if s == entity.MemberStatusSuspended {
		return "Sospeso"
	}
	return "Attivo"
}

func duesLabel(active bool) string {
	if active {
		return "Attiva"
	}
	return "Non attiva"
}

func yesNo(b bool) string {
	if b {
		return "Sì"
	}
	return "No"
}

func attachmentLabel(c *entity.Case) string {
	if f := c.File(); f != nil {
		return f.Name + " (" + f.Size + ")"
	}
	return "Nessuno"
}
