package entity

import "time"

// Roles válidos para User. Los valores son estables: se persisten tal cual.
const (
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// IsValidRole reporta si r es uno de los roles conocidos.
func IsValidRole(r string) bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleOperator || r == RoleViewer
}

// CanWrite indica si el rol puede crear, modificar o eliminar registros de la sede.
func CanWrite(role string) bool {
	return role == RoleOwner || role == RoleAdmin || role == RoleOperator
}

// CanAudit indica si el rol puede consultar el registro de actividad.
func CanAudit(role string) bool {
	return role == RoleOwner || role == RoleAdmin
}

// User representa un operador de una sede.
// Password contiene el hash bcrypt; nunca se expone fuera del almacenamiento.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"password,omitempty"`
	OfficeName  string    `json:"nomeSede"`
	DisplayName string    `json:"operatore"`
	Role        string    `json:"role"`
	SedeID      string    `json:"sedeId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) GetID() string           { return u.ID }
func (u *User) SetID(id string)         { u.ID = id }
func (u *User) GetSedeID() string       { return u.SedeID }
func (u *User) SetSedeID(sedeID string) { u.SedeID = sedeID }

// Sanitized devuelve una copia sin la credencial.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Password = ""
	return &cp
}

// Actor es quien ejecuta una operación: determina la sede de escritura y
// la autoría en el registro de actividad.
type Actor struct {
	UserID string
	Name   string
	SedeID string
	Role   string
}

// ActorOf construye el Actor a partir de un usuario autenticado.
func ActorOf(u *User) Actor {
	return Actor{UserID: u.ID, Name: u.DisplayName, SedeID: u.SedeID, Role: u.Role}
}
