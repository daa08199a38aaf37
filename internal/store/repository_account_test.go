package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/models"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAccountGet_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "handle", "email", "team_id", "password", "created_at"}).
		AddRow("u-1", "alice", "a@example.com", "t-1", "secret", now)

	mock.ExpectQuery("SELECT user_id, handle, email, team_id, password, created_at").
		WithArgs("u-1").
		WillReturnRows(rows)

	user, err := repo.Get(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Handle != "alice" || user.TeamID != "t-1" || user.Password != "secret" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestAccountGet_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, handle, email, team_id, password, created_at").
		WithArgs("u-missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "u-missing")
	if !errors.Is(err, ErrNoAccountWasFound) {
		t.Errorf("expected ErrNoAccountWasFound, got %v", err)
	}
}

func TestAccountSave_Upsert(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	now := time.Now()
	user := models.User{UserID: "u-1", Handle: "alice", Email: "a@example.com", Password: "new-secret", CreatedAt: now}

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs("u-1", "alice", "a@example.com", "", "new-secret", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
