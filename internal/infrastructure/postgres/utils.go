package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
)

// mapPostgresError traduce errores de PostgreSQL a errores de dominio o los envuelve con contexto.
func mapPostgresError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation, pgerrcode.SerializationFailure:
		// Dos escritores insertaron o actualizaron la misma colección a la vez.
		return fmt.Errorf("%w: %s", domain.ErrRevisionConflict, pgErr.Message)
	case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidJSONText:
		return fmt.Errorf("%w: valor JSON inválido: %s", domain.ErrInvalidInput, pgErr.Message)
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return fmt.Errorf("conexión a la base de datos: %w", err)
	case pgerrcode.AdminShutdown, pgerrcode.CrashShutdown:
		return fmt.Errorf("servidor de base de datos no disponible: %w", err)
	case pgerrcode.QueryCanceled:
		return fmt.Errorf("consulta cancelada: %w", err)
	default:
		return fmt.Errorf("postgres [%s]: %s: %w", pgErr.Code, pgErr.Message, err)
	}
}
