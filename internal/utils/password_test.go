package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("пароль не должен храниться открытым текстом")
	}

	if !CheckPasswordHash("admin123", hash) {
		t.Fatal("верный пароль не прошёл проверку")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("неверный пароль прошёл проверку")
	}
}
