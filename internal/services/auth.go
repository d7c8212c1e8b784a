package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"conferencehub/internal/domain"
)

const minPasswordLength = 6

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	verifier    domain.TokenVerifier
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService with the given repositories and auth ports.
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	tokenExpiry time.Duration,
) domain.AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		verifier:    verifier,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(email, hash, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*domain.SignInResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	session := &domain.Session{UserID: user.ID, Token: token, CreatedAt: time.Now()}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &domain.SignInResult{User: user, Token: token}, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (int64, error) {
	userID, err := s.verifier.Verify(token)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}
	// A token is only good while its session row lives; signing out or a
	// server-side purge invalidates it even before the JWT expires.
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrUnauthorized
		}
		return 0, fmt.Errorf("get session: %w", err)
	}
	if session.UserID != userID {
		return 0, domain.ErrUnauthorized
	}
	return userID, nil
}
