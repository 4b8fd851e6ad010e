package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aurora-studio/site-api/internal/models"
)

// Claims wraps jwt.RegisteredClaims with the fields admin gating needs.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject back into a store id.
func (c *Claims) UserID() int64 {
	v, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// TokenIssuer mints and verifies the HS256 access tokens returned by login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("auth: token secret not configured")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

func (ti *TokenIssuer) Mint(u *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

func (ti *TokenIssuer) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	var claims Claims

	_, err := parser.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		return nil, errors.New("token expired")
	}

	return &claims, nil
}
