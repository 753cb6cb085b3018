package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hunt-server/internal/config"
	"hunt-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidSubject  = errors.New("token subject is not a user id")
)

// RoleAdmin may approve enrollments, manage policies and trigger regeneration
const RoleAdmin = "admin"

type AuthProcessor struct {
	authConfig config.AuthConfig
	logger     *observability.Logger
	now        func() time.Time
}

func New(authConfig config.AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		authConfig: authConfig,
		logger:     logger,
		now:        time.Now,
	}
}

// Claims are the bearer token claims the engine reads
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
	// Age is asserted by the identity provider and gates age-banded plans
	Age *int `json:"age,omitempty"`
}

// Principal is the caller identified by a verified token
type Principal struct {
	UserID uuid.UUID
	Role   string
	Age    *int
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ValidateJWTToken verifies an HS256 token and returns the caller it names.
func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
	}
	if p.authConfig.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.authConfig.Issuer))
	}

	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.authConfig.JWTSecret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return Principal{}, ErrExpiredToken
		}
		p.logger.Error(ctx, "failed to parse token", err)
		return Principal{}, ErrParseJWTToken
	}
	if !t.Valid {
		return Principal{}, ErrInvalidJWTToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		p.logger.Error(ctx, "token subject is not a uuid", err)
		return Principal{}, ErrInvalidSubject
	}
	return Principal{UserID: userID, Role: claims.Role, Age: claims.Age}, nil
}

// IssueJWTToken signs a token for userID. Used by operators and tests to mint credentials.
func (p *AuthProcessor) IssueJWTToken(ctx context.Context, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := p.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    p.authConfig.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.authConfig.JWTSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", err
	}
	return signed, nil
}
