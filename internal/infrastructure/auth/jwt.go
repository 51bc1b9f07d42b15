package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

const defaultAccessExpiry = 24 * time.Hour

// TokenManager emite e valida access tokens JWT (HS256).
// O subject do token carrega o ID do usuário autenticado.
type TokenManager struct {
	secret       []byte
	accessExpiry time.Duration
}

// NewTokenManager cria um novo TokenManager.
// accessExpiry usa o formato do time.ParseDuration; vazio ou inválido
// cai no default de 24h.
func NewTokenManager(secret, accessExpiry string) *TokenManager {
	expiry := defaultAccessExpiry
	if d, err := time.ParseDuration(accessExpiry); err == nil && d > 0 {
		expiry = d
	}

	return &TokenManager{
		secret:       []byte(secret),
		accessExpiry: expiry,
	}
}

// Generate emite um token para o usuário
func (m *TokenManager) Generate(userID uint) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify valida o token e retorna o ID do usuário autenticado
func (m *TokenManager) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}
