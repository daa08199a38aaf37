package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/models"
)

type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs the SQLite-backed [AccountRepository].
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{db: db, logger: logger}
}

// Get implements [AccountRepository].
func (r *accountRepository) Get(ctx context.Context, userID string) (models.User, error) {
	var user models.User

	row := r.db.QueryRowContext(ctx, queryGetAccount, userID)
	err := row.Scan(&user.UserID, &user.Handle, &user.Email, &user.TeamID, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user %s", ErrNoAccountWasFound, userID)
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return user, nil
}

// Save implements [AccountRepository]. Upsert keyed by user id; CreatedAt is
// preserved on update.
func (r *accountRepository) Save(ctx context.Context, user models.User) error {
	return r.db.WithFileGuard(func() error {
		_, err := r.db.ExecContext(ctx, querySaveAccount,
			user.UserID, user.Handle, user.Email, user.TeamID, user.Password, user.CreatedAt)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}

		return nil
	})
}
