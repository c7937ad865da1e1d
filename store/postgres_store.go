package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaba-landing/models"
	"github.com/jaba-landing/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgresStore inserts registrations straight into the store's Postgres
type PostgresStore struct {
	repo *repositories.RegistrationRepository
}

// NewPostgresStore creates a store on top of an open gorm connection
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{repo: repositories.NewRegistrationRepository(db)}
}

func (s *PostgresStore) Insert(ctx context.Context, record models.Registration) error {
	if err := s.repo.Create(ctx, record); err != nil {
		return translatePgError(record.TableName(), err)
	}
	return nil
}

// translatePgError turns errors reported by the server into *Error and
// everything else into ErrTransport
func translatePgError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &Error{
			Table:   table,
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Details: pgErr.Detail,
			Hint:    pgErr.Hint,
		}
	}
	return fmt.Errorf("%w: insert into %s: %v", ErrTransport, table, err)
}
