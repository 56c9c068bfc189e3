package utils

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("secret", "u1", "admin@restfulmind.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("ошибка парсинга токена: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "admin@restfulmind.com" || claims.Role != "admin" {
		t.Fatalf("claims не совпадают: %+v", claims)
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", "u1", "a@b.c", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	_, err = ParseToken("secret", token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("ожидался ErrTokenExpired, получено %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "u1", "a@b.c", "admin", time.Hour)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	_, err = ParseToken("another", token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ожидался ErrTokenInvalid, получено %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ожидался ErrTokenInvalid, получено %v", err)
	}
}
