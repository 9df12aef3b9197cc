package repo

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"crowdfund/internal/domain"
	"crowdfund/internal/sqlinline"
)

// mapError translates driver errors into domain errors. Malformed ids are
// reported as not found since no row can carry them.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.InvalidTextRepresentation:
			return domain.ErrNotFound
		case pgerrcode.UniqueViolation:
			switch pgErr.ConstraintName {
			case sqlinline.ConstraintUsersUsername:
				return domain.ErrUsernameTaken
			case sqlinline.ConstraintUsersEmail:
				return domain.ErrEmailTaken
			}
		}
	}
	return err
}
