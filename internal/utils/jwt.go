package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("токен просрочен")
	ErrTokenInvalid = errors.New("неверный токен")
)

type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// GenerateToken создаёт access-токен (HS256): subject — UUID пользователя,
// плюс email и роль. Refresh-токенов нет, токен живёт весь свой TTL.
func GenerateToken(secret, userID, email, role string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   now.Add(duration).Unix(),
		"iat":   now.Unix(), // issued at — доп. уникальность
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия; истёкший и испорченный
// токены различаются, чтобы middleware отдавал точное сообщение.
func ParseToken(secret, tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, ErrTokenInvalid
	}

	return &TokenClaims{UserID: sub, Email: email, Role: role}, nil
}
