package dto

import "github.com/jhoicas/gestione-sindacale/internal/domain/entity"

// CaseStatusRequest cambio de estado de una pratica (tablero).
type CaseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MarkAllReadResponse avisos marcados como leídos.
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

// ScanResponse resultado del escaneo de vencimientos.
type ScanResponse struct {
	Derived  int `json:"derived"`
	Inserted int `json:"inserted"`
}

// CaseReportRow fila del registro de pratiche con el iscritto resuelto.
type CaseReportRow struct {
	Case       entity.Case
	MemberName string // "Sconosciuto" si la referencia no resuelve
}
