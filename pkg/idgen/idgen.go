// Package idgen genera los identificadores de entidades y sedes.
//
// Las entidades usan ids cortos base58 (unicidad probabilística, sin asignador
// central); las sedes usan UUID v7 para que sean ordenables por creación.
package idgen

import (
	"crypto/rand"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

const shortIDBytes = 9

// Short devuelve un id alfanumérico corto (base58, 72 bits de entropía).
func Short() string {
	var b [shortIDBytes]byte
	_, _ = rand.Read(b[:]) // crypto/rand.Read no falla en plataformas soportadas
	return base58.Encode(b[:])
}

// Tenant devuelve un identificador nuevo de sede.
func Tenant() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
