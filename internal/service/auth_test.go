package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"todolist_api/internal/domain"
	"todolist_api/internal/repository"
	"todolist_api/internal/session"
)

type fakeUserStore struct {
	users  []*domain.User
	nextID int64
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	for _, e := range s.users {
		if e.Username == u.Username || e.Email == u.Email {
			return repository.ErrDuplicateUser
		}
	}
	s.nextID++
	u.ID = s.nextID
	u.CreatedAt = time.Now()
	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, e := range s.users {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, e := range s.users {
		if e.Username == username || e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newAuthService() (*AuthService, *fakeUserStore, session.Store) {
	users := &fakeUserStore{}
	sessions := session.NewMemoryStore()
	return NewAuthService(users, sessions), users, sessions
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: "u1", Email: "u1@x.com", Password: "p"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if u.PasswordHash == "p" || u.PasswordHash == "" {
		t.Fatalf("password must be stored as a hash, got %q", u.PasswordHash)
	}

	var hasher PasswordHasher
	if !hasher.Verify("p", u.PasswordHash) {
		t.Fatalf("stored hash does not verify against the original password")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	cases := []RegisterInput{
		{Email: "a@x.com", Password: "p"},
		{Username: "a", Password: "p"},
		{Username: "a", Email: "a@x.com"},
	}
	for _, in := range cases {
		if _, err := svc.Register(ctx, in); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %+v, got %v", in, err)
		}
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "u1", Email: "u1@x.com", Password: "p"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// same email, different username
	_, err := svc.Register(ctx, RegisterInput{Username: "other", Email: "u1@x.com", Password: "q"})
	if !errors.Is(err, repository.ErrDuplicateUser) {
		t.Fatalf("expected duplicate error for reused email, got %v", err)
	}

	// same username, different email
	_, err = svc.Register(ctx, RegisterInput{Username: "u1", Email: "other@x.com", Password: "q"})
	if !errors.Is(err, repository.ErrDuplicateUser) {
		t.Fatalf("expected duplicate error for reused username, got %v", err)
	}
}

func TestLoginStateMachine(t *testing.T) {
	svc, _, sessions := newAuthService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Username: "u1", Email: "u1@x.com", Password: "p"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(ctx, "nobody@x.com", "p"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "u1@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	su, token, err := svc.Login(ctx, "u1@x.com", "p")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if su.ID != created.ID || su.Username != "u1" || su.Email != "u1@x.com" {
		t.Fatalf("session summary does not match stored user: %+v", su)
	}

	resolved, err := sessions.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.ID != created.ID {
		t.Fatalf("resolved session user id = %d, want %d", resolved.ID, created.ID)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := sessions.Resolve(ctx, token); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected session destroyed after logout, got %v", err)
	}
}
