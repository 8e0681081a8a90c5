// Package usecase hosts the auth flow plus the commands and queries
// sub-packages that make up the domain mock services.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"stash-backend/internal/pkg/config"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/pkg/jwt"
	"stash-backend/internal/pkg/password"
	"stash-backend/internal/pkg/seed"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

// AuthenticatedUser is what a valid token resolves to. The id doubles as the
// seed key for every derived dataset, so it must be stable per email.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token string            `json:"token"`
	User  AuthenticatedUser `json:"user"`
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	ValidateToken(tokenString string) (*AuthenticatedUser, error)
}

type authUseCaseImpl struct {
	jwtService   *jwt.Service
	demoEmail    string
	demoPassHash string
}

// NewAuthUseCase hashes the demo password once at construction so Login can
// run a real bcrypt comparison on every attempt.
func NewAuthUseCase(jwtService *jwt.Service, demo config.DemoConfig) (AuthUseCase, error) {
	hash, err := password.Hash(demo.Password)
	if err != nil {
		return nil, errs.Wrap(err, "hashing demo credentials")
	}
	return &authUseCaseImpl{
		jwtService:   jwtService,
		demoEmail:    strings.ToLower(demo.Email),
		demoPassHash: hash,
	}, nil
}

func (a *authUseCaseImpl) Login(_ context.Context, email, plainPassword string) (*LoginResult, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized != a.demoEmail {
		// Same error as a password mismatch to prevent account enumeration.
		return nil, ErrInvalidCredentials
	}
	if err := password.Compare(a.demoPassHash, plainPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	user := UserForEmail(normalized)
	token, err := a.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (*AuthenticatedUser, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	return &AuthenticatedUser{ID: claims.UserID, Email: claims.Email}, nil
}

// UserForEmail derives the stable opaque user id for an email address. The
// same email always maps to the same id, which keeps every seeded dataset
// consistent across logins.
func UserForEmail(email string) AuthenticatedUser {
	return AuthenticatedUser{
		ID:    fmt.Sprintf("user_%d", seed.FromString(email)),
		Email: email,
	}
}
