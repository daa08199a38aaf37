package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/models"
)

type registrationStateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRegistrationStateRepository constructs the SQLite-backed
// [RegistrationStateRepository].
func NewRegistrationStateRepository(db *DB, logger *logger.Logger) RegistrationStateRepository {
	return &registrationStateRepository{db: db, logger: logger}
}

// Get implements [RegistrationStateRepository]. A missing row is not an
// error: it means the account has never registered a client, so the
// Unregistered state is returned.
func (r *registrationStateRepository) Get(ctx context.Context, userID string) (models.RegistrationState, error) {
	var state models.RegistrationState

	row := r.db.QueryRowContext(ctx, queryGetRegistrationState, userID)
	err := row.Scan(&state.Kind, &state.ClientID, &state.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Unregistered(), nil
		}
		return models.RegistrationState{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return state, nil
}

// Put implements [RegistrationStateRepository]. The write is an upsert keyed
// by user, so at most one state row exists per account.
func (r *registrationStateRepository) Put(ctx context.Context, userID string, state models.RegistrationState) error {
	return r.db.WithFileGuard(func() error {
		res, err := r.db.ExecContext(ctx, queryPutRegistrationState,
			userID, state.Kind, state.ClientID, state.Version)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrStateNotSaved
		}

		return nil
	})
}
