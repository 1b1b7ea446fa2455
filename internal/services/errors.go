package services

import (
	"errors"
	"net"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
)

// Postgres error classes the service layer cares about. Anything else from
// the driver is an internal failure.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// translateDBError folds driver-level failures into the API error taxonomy.
// Uniqueness becomes a conflict, a broken reference becomes not-found (the
// caller pointed at a row that is not there), connectivity becomes
// unavailable, everything else internal.
func translateDBError(err error) *apierr.Error {
	if err == nil {
		return nil
	}
	if e := apierr.As(err); e != nil {
		return e
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NotFound("record not found", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apierr.Conflict("record violates a uniqueness constraint", err)
		case pgForeignKeyViolation:
			return apierr.NotFound("referenced record does not exist", err)
		case pgNotNullViolation:
			return apierr.Validation("required field is missing", err)
		}
		// Class 08 covers connection exceptions.
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return apierr.Unavailable("database unavailable", err)
		}
		return apierr.Internal("database error", err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return apierr.Unavailable("database unavailable", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return apierr.Unavailable("database unavailable", err)
	}

	return apierr.Internal("database error", err)
}
