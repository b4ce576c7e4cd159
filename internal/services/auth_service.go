package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/middleware"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/repositories"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

const (
	// Default session length, and the extended one behind "remember me".
	sessionTTL         = 24 * time.Hour
	rememberSessionTTL = 30 * 24 * time.Hour
)

type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*models.User, error)
	// Login returns a signed session token and its lifetime.
	Login(ctx context.Context, email, password string, rememberMe bool) (string, time.Duration, error)
}

type authService struct {
	users  repositories.UserRepository
	secret []byte
	now    func() time.Time
}

func NewAuthService(users repositories.UserRepository, sessionSecret []byte) AuthService {
	return &authService{
		users:  users,
		secret: sessionSecret,
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, email, password, displayName string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	// Pre-check is optimistic; the unique index on email backstops races.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check existing account: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string, rememberMe bool) (string, time.Duration, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, fmt.Errorf("look up account: %w", err)
	}
	if !utils.CheckPasswordHash(password, u.PasswordHash) {
		return "", 0, ErrInvalidCredentials
	}

	ttl := sessionTTL
	if rememberMe {
		ttl = rememberSessionTTL
	}
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"name":  u.DisplayName,
		"iss":   middleware.TokenIssuer,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign session token: %w", err)
	}
	return token, ttl, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation
// (SQLSTATE 23505), the backstop for the email uniqueness race.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
