package repository

import "context"

// Claves estables de las colecciones persistidas.
const (
	KeyUsers          = "gs_users"
	KeyCurrentSession = "gs_current_session"
	KeyOffices        = "gs_offices"
	KeyMembers        = "gs_members"
	KeyCases          = "gs_cases"
	KeyEvents         = "gs_events"
	KeyDocuments      = "gs_documents"
	KeyNotifications  = "gs_notifications"
	KeyActivityLogs   = "gs_activity_logs"
)

// Snapshot valor completo de una clave junto a su revisión.
// Revision 0 significa que la clave no existe.
type Snapshot struct {
	Data     []byte
	Revision int64
}

// Empty reporta si la clave no tiene valor.
func (s Snapshot) Empty() bool {
	return len(s.Data) == 0
}

// CollectionStorage puerto del almacenamiento clave/valor de colecciones JSON (DIP).
//
// Read nunca falla por una clave ausente: devuelve un Snapshot vacío.
// Write reemplaza el valor entero sólo si la revisión actual coincide con
// expected (0 = la clave no debe existir); en caso contrario devuelve
// domain.ErrRevisionConflict.
type CollectionStorage interface {
	Read(ctx context.Context, key string) (Snapshot, error)
	Write(ctx context.Context, key string, data []byte, expected int64) (int64, error)
}
