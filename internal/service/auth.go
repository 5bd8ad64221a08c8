package service

import (
	"context"
	"errors"

	"todolist_api/internal/domain"
	"todolist_api/internal/repository"
	"todolist_api/internal/session"
)

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type AuthService struct {
	users    UserStore
	sessions session.Store
	hasher   PasswordHasher
}

func NewAuthService(users UserStore, sessions session.Store) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// Register creates a user with a unique username and email. The
// password is hashed exactly once, before the record is persisted.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateUser
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Avatar:       in.Avatar,
	}
	// The uniqueness pre-check races with concurrent registration; the
	// unique indexes are the backstop and surface as ErrDuplicateUser.
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and opens a session. It returns the
// session summary and the opaque token to hand to the client.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.SessionUser, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	su := domain.SessionUser{ID: u.ID, Username: u.Username, Email: u.Email}
	token, err := s.sessions.Create(ctx, su)
	if err != nil {
		return nil, "", err
	}
	return &su, token, nil
}

// Logout destroys the session behind the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
