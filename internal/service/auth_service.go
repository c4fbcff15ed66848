package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
)

// --- Error Definitions ---
var (
	ErrTokenGeneration = errors.New("failed to generate session token")
)

// AuthService handles the MVP mock login: any password is accepted and a
// coach account is created on first login by email. This is intentionally not
// a security boundary.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Coach, string, error)
}

// --- Service Implementation ---

type authService struct {
	coachRepo     repository.CoachRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(coachRepo repository.CoachRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		coachRepo:     coachRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Login resolves a coach identity by email, creating the account if absent.
// The password is accepted unconditionally. Calling twice with the same email
// returns the same coach.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.Coach, string, error) {
	if email == "" {
		return nil, "", errors.New("email cannot be empty")
	}

	coach, err := s.coachRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, "", err
		}
		// First login: create the coach with a name derived from the email.
		coach = &domain.Coach{
			Email: email,
			Name:  nameFromEmail(email),
		}
		coachID, createErr := s.coachRepo.Create(ctx, coach)
		if createErr != nil {
			return nil, "", createErr
		}
		coach.ID = coachID
	}

	token, err := s.generateJWT(coach)
	if err != nil {
		return nil, "", ErrTokenGeneration
	}

	return coach, token, nil
}

// nameFromEmail derives a display name from the local part of an email
// address: "john.doe@x.com" -> "John.Doe".
func nameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}

	var b strings.Builder
	prevLetter := false
	for _, r := range local {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	CoachID string `json:"uid"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given coach. The token is
// returned to the frontend for safekeeping; no endpoint currently requires it.
func (s *authService) generateJWT(coach *domain.Coach) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		CoachID: coach.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   coach.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "brocoachme",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}
