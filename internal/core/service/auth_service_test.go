package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	byPhone map[string]*domain.User
	nextID  int
	findErr error // forced error on every lookup
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
		byPhone: make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	u := *user
	u.ID = "user_" + strconv.Itoa(r.nextID)
	r.byID[u.ID] = &u
	r.byEmail[u.Email] = &u
	r.byPhone[u.Phone] = &u
	out := u
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *stubUserRepo) FindByPhone(_ context.Context, phone string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byPhone[phone]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

var _ ports.UserRepository = (*stubUserRepo)(nil)

func validRegisterInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+5215512345678",
		Password: "correct-horse",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_HappyPath(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	user, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Error("expected assigned ID")
	}
	if user.Role != domain.RoleGuest {
		t.Errorf("expected new accounts to be guests, got %q", user.Role)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")) != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	in := validRegisterInput()
	in.Password = "short"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in := validRegisterInput()
	in.Phone = "+5215587654321"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists for duplicate email, got: %v", err)
	}
}

func TestAuthService_Register_DuplicatePhone(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in := validRegisterInput()
	in.Email = "alice2@example.com"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists for duplicate phone, got: %v", err)
	}
}

func TestAuthService_Login_HappyPath(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Login(context.Background(), "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("unexpected user: %q", user.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	if _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}
