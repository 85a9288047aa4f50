package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/vowsync/vowsync/internal/models"
)

type memUserStorage struct {
	users map[string]*models.User
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{users: map[string]*models.User{}}
}

func (m *memUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = "u-" + user.Email
	m.users[user.Email] = user
	return nil
}

func (m *memUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return user, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := NewPasswordAuthenticator(newMemUserStorage())
	ctx := context.Background()

	user, err := a.Register(ctx, "ada@example.com", "longenough")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.PasswordHash == "longenough" {
		t.Error("password must be stored hashed, not plain")
	}

	got, err := a.Authenticate(ctx, "ada@example.com", "longenough")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Authenticate() user = %+v, want the registered one", got)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	a := NewPasswordAuthenticator(newMemUserStorage())
	ctx := context.Background()
	if _, err := a.Register(ctx, "ada@example.com", "longenough"); err != nil {
		t.Fatal(err)
	}

	if _, err := a.Authenticate(ctx, "ada@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := a.Authenticate(ctx, "ghost@example.com", "longenough"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	a := NewPasswordAuthenticator(newMemUserStorage())
	if _, err := a.Register(context.Background(), "ada@example.com", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("Register() error = %v, want ErrWeakPassword", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	a := NewPasswordAuthenticator(newMemUserStorage())
	ctx := context.Background()
	if _, err := a.Register(ctx, "ada@example.com", "longenough"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Register(ctx, "ada@example.com", "longenough"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("second Register() error = %v, want ErrEmailExists", err)
	}
}
