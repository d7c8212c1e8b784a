package domain

import (
	"context"
	"time"
)

// User represents an account holder.
// swagger:model User
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser returns a new User. ID is set by the repository on create.
func NewUser(email, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:     email,
		Password:  passwordHash,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Session is a server-side record of an issued token. A token is only valid
// while its session row exists.
type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// PasswordHasher handles hashing and verification of user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID int64, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID int64, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
}

// SignInResult bundles the authenticated user with the issued token.
type SignInResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// AuthService defines account and session business logic.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*User, error)
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	// ValidateSession verifies the token signature and checks that a session
	// row still exists for it. Returns the authenticated user ID.
	ValidateSession(ctx context.Context, token string) (int64, error)
}
