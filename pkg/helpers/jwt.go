package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers tampered, malformed and expired session tokens;
// callers treat them all the same way.
var ErrInvalidToken = errors.New("invalid session token")

// JWTManager issues and verifies signed session tokens. A token binds a
// user id to an absolute expiry; there is no refresh flow, expired
// sessions require a fresh login. Rotating the secret invalidates every
// outstanding session.
type JWTManager struct {
	Secret     []byte
	SessionTTL time.Duration
}

func NewJWTManager(secret string, sessionTTL time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), SessionTTL: sessionTTL}
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Generate signs a session token for userID, expiring SessionTTL from now.
func (m *JWTManager) Generate(userID string) (string, time.Time, error) {
	exp := time.Now().Add(m.SessionTTL)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse verifies the signature and expiry of a session token and returns
// its claims. Any failure is reported as ErrInvalidToken.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
