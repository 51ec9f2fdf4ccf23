package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func expectationsMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func sampleUser() domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.User{
		FullName:    "ciphertext-name",
		CPF:         "ciphertext-cpf",
		Email:       "ciphertext-email",
		PhoneNumber: "ciphertext-phone",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	mock := newMock(t)
	u := sampleUser()

	mock.ExpectQuery("INSERT INTO users .+ RETURNING id").
		WithArgs(u.FullName, u.CPF, u.Email, u.PhoneNumber, u.CreatedAt, u.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	repo := NewUserRepository(mock)
	created, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("id = %d, want 1", created.ID)
	}
	if created.CPF != u.CPF {
		t.Errorf("stored value changed: %q", created.CPF)
	}
	expectationsMet(t, mock)
}

func TestUserRepositoryGetByID(t *testing.T) {
	mock := newMock(t)
	u := sampleUser()
	u.ID = 3

	mock.ExpectQuery("SELECT .+ FROM users WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "cpf", "email", "phone_number", "created_at", "updated_at"}).
			AddRow(u.ID, u.FullName, u.CPF, u.Email, u.PhoneNumber, u.CreatedAt, u.UpdatedAt))

	repo := NewUserRepository(mock)
	got, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != u {
		t.Errorf("got %+v, want %+v", got, u)
	}
	expectationsMet(t, mock)
}

func TestUserRepositoryGetByID_NotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM users WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "cpf", "email", "phone_number", "created_at", "updated_at"}))

	repo := NewUserRepository(mock)
	_, err := repo.GetByID(context.Background(), 99)
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("kind = %v, want not-found", domain.KindOf(err))
	}
	expectationsMet(t, mock)
}

func TestUserRepositoryListAll(t *testing.T) {
	mock := newMock(t)
	a, b := sampleUser(), sampleUser()
	a.ID, b.ID = 1, 2
	b.CPF = "other-ciphertext"

	mock.ExpectQuery("SELECT .+ FROM users ORDER BY id").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "cpf", "email", "phone_number", "created_at", "updated_at"}).
			AddRow(a.ID, a.FullName, a.CPF, a.Email, a.PhoneNumber, a.CreatedAt, a.UpdatedAt).
			AddRow(b.ID, b.FullName, b.CPF, b.Email, b.PhoneNumber, b.CreatedAt, b.UpdatedAt))

	repo := NewUserRepository(mock)
	users, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != 2 || users[0].ID != 1 || users[1].CPF != "other-ciphertext" {
		t.Errorf("unexpected result: %+v", users)
	}
	expectationsMet(t, mock)
}

func TestUserRepositoryListAll_Empty(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM users ORDER BY id").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "cpf", "email", "phone_number", "created_at", "updated_at"}))

	repo := NewUserRepository(mock)
	users, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	// Empty is the service's call to turn into 404, not the store's.
	if len(users) != 0 {
		t.Errorf("got %d users, want none", len(users))
	}
	expectationsMet(t, mock)
}

func TestUserRepositoryUpdate_NotFound(t *testing.T) {
	mock := newMock(t)
	u := sampleUser()
	u.ID = 42

	mock.ExpectExec("UPDATE users SET .+ WHERE id = \\$6").
		WithArgs(u.FullName, u.CPF, u.Email, u.PhoneNumber, u.UpdatedAt, u.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewUserRepository(mock)
	_, err := repo.Update(context.Background(), u)
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("kind = %v, want not-found", domain.KindOf(err))
	}
	expectationsMet(t, mock)
}

func TestUserRepositoryDelete(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewUserRepository(mock)
	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	expectationsMet(t, mock)
}

func TestUserRepositoryDelete_DBError(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnError(errors.New("connection reset"))

	repo := NewUserRepository(mock)
	err := repo.Delete(context.Background(), 5)
	if err == nil {
		t.Fatal("expected an error")
	}
	// Store faults stay uncategorised so the API answers a generic 500.
	if domain.KindOf(err) != domain.KindUnknown {
		t.Errorf("kind = %v, want unknown", domain.KindOf(err))
	}
	expectationsMet(t, mock)
}
