package auth

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "testpassword123"

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if hashed == "" {
		t.Error("Hashed password should not be empty")
	}

	if hashed == password {
		t.Error("Hashed password should be different from original")
	}

	hashed2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password second time: %v", err)
	}

	if hashed == hashed2 {
		t.Error("Different hashes should be generated for same password (bcrypt salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "testpassword123"
	wrongPassword := "wrongpassword"

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if !CheckPassword(hashed, password) {
		t.Error("CheckPassword should return true for correct password")
	}

	if CheckPassword(hashed, wrongPassword) {
		t.Error("CheckPassword should return false for wrong password")
	}

	if CheckPassword(hashed, "") {
		t.Error("CheckPassword should return false for empty password")
	}
}

func TestGenerateToken(t *testing.T) {
	tok1, err := GenerateToken()
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	tok2, err := GenerateToken()
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if len(tok1) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(tok1))
	}
	if tok1 == tok2 {
		t.Error("Tokens should be unique")
	}
}

func TestHashToken(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	h3 := HashToken("abd")

	if h1 != h2 {
		t.Error("HashToken should be deterministic")
	}
	if h1 == h3 {
		t.Error("Different tokens should hash differently")
	}
	if len(h1) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(h1))
	}
}
