package entity

import "time"

// Office es la sede sindacale. Su ID es el tenant id de todos los datos de la sede.
// NormalizedName es la clave de búsqueda usada en el registro para decidir
// entre crear una sede nueva o unirse a una existente.
type Office struct {
	ID             string    `json:"id"`
	Name           string    `json:"nome"`
	NormalizedName string    `json:"nomeNormalizzato"`
	CreatedAt      time.Time `json:"createdAt"`
}
