package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/models"
)

type clientRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewClientRepository constructs the SQLite-backed [ClientRepository].
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	return &clientRepository{db: db, logger: logger}
}

// ReplaceAll implements [ClientRepository]. The delete and the inserts run
// in one transaction so a reader never observes a half-replaced set.
func (r *clientRepository) ReplaceAll(ctx context.Context, userID string, clients []models.Client) error {
	return r.db.WithFileGuard(func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if _, err = tx.ExecContext(ctx, queryDeleteClientsByUser, userID); err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}

		for _, c := range clients {
			_, err = tx.ExecContext(ctx, queryInsertClient,
				c.ID, userID, c.Label, c.Model, c.Fingerprint, c.RegisteredAt)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
			}
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
		}

		return nil
	})
}

// Insert implements [ClientRepository].
func (r *clientRepository) Insert(ctx context.Context, client models.Client) error {
	return r.db.WithFileGuard(func() error {
		_, err := r.db.ExecContext(ctx, queryInsertClient,
			client.ID, client.UserID, client.Label, client.Model, client.Fingerprint, client.RegisteredAt)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}

		return nil
	})
}

// ListByUser implements [ClientRepository].
func (r *clientRepository) ListByUser(ctx context.Context, userID string) ([]models.Client, error) {
	rows, err := r.db.QueryContext(ctx, queryListClientsByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err = rows.Scan(&c.ID, &c.UserID, &c.Label, &c.Model, &c.Fingerprint, &c.RegisteredAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		clients = append(clients, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return clients, nil
}

// Delete implements [ClientRepository]. Returns [ErrClientNotFound] if no
// row matched, leaving the cache untouched.
func (r *clientRepository) Delete(ctx context.Context, userID, clientID string) error {
	return r.db.WithFileGuard(func() error {
		res, err := r.db.ExecContext(ctx, queryDeleteClient, userID, clientID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: client %s", ErrClientNotFound, clientID)
		}

		return nil
	})
}
