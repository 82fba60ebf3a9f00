package app

import (
	"context"
	"errors"

	"newsroom/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided email or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists indicates that the username or email is already taken.
	ErrUserExists = errors.New("username or email already exists")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// AuthService handles registration, login, and token issuance.
type AuthService struct {
	users  domain.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account. The role comes from the caller,
// defaulting handled upstream; an already-taken username or email is
// ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, username, email, string(hash), role)
}

// Login authenticates by email and password and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Lookup fetches the user behind an already-verified identity, for
// token-validation responses.
func (s *AuthService) Lookup(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// LoginWithProvider issues a token for a user authenticated by an
// external identity provider, auto-provisioning an editor account on
// first login. Provider accounts carry an empty password hash and can
// only authenticate via the provider.
func (s *AuthService) LoginWithProvider(ctx context.Context, username, email string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		user, err = s.users.Create(ctx, username, email, "", domain.RoleEditor)
		if err != nil {
			// Creation can race with a concurrent first login; retry the read.
			user, err = s.users.GetByEmail(ctx, email)
			if err != nil {
				return "", nil, err
			}
			if user == nil {
				return "", nil, errors.New("failed to provision user")
			}
		}
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
