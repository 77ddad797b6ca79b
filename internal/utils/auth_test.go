package utils

import (
	"testing"

	"github.com/construmax/inventario-go/internal/models"
)

func TestPasswordHashing(t *testing.T) {
	password := "secret123"

	// Test Hashing
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == password {
		t.Error("Hash should not match plaintext password")
	}
	if len(hash) == 0 {
		t.Error("Hash should not be empty")
	}

	// Test Comparison (Success)
	if !CheckPasswordHash(password, hash) {
		t.Error("Password should match hash")
	}

	// Test Comparison (Failure)
	if CheckPasswordHash("wrongpassword", hash) {
		t.Error("Wrong password should not match hash")
	}
}

func TestJWT(t *testing.T) {
	secret := "test-secret-key-12345"

	usuario := &models.Usuario{
		ID:       7,
		Username: "bodeguero",
		Rol:      "operador",
	}

	token, err := GenerateToken(usuario, secret)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("Token should not be empty")
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims["username"] != "bodeguero" {
		t.Errorf("Username claim: got %v, want bodeguero", claims["username"])
	}
	if claims["rol"] != "operador" {
		t.Errorf("Rol claim: got %v, want operador", claims["rol"])
	}

	// Wrong secret must be rejected
	if _, err := ValidateToken(token, "other-secret"); err == nil {
		t.Error("Token validated with wrong secret")
	}
}
