package postgres

import (
	"errors"
	"fmt"
	"net"

	appErrors "fleet-monitor/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes of interest. Constraint failures map to
// ErrConstraintViolation, connection-class failures to
// ErrStorageUnavailable; everything else passes through wrapped.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeNotNullViolation, codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, appErrors.ErrConstraintViolation, pgErr.Message)
		}
		// Class 08 covers connection exceptions.
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return fmt.Errorf("%s: %w: %s", op, appErrors.ErrStorageUnavailable, pgErr.Message)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %v", op, appErrors.ErrStorageUnavailable, netErr)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
