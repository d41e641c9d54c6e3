package utils

import (
	"testing"
	"time"
)

func init() {
	ConfigureJWT("test-secret", 60)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if !CheckPasswordHash("hunter2hunter2", hash) {
		t.Error("Expected correct password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("abc123", "alice@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}
	if claims.UserID != "abc123" {
		t.Errorf("Expected user ID abc123, got %s", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Expected email alice@example.com, got %s", claims.Email)
	}
	if claims.ID == "" {
		t.Error("Expected a token ID claim")
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Error("Expected token to expire in the future")
	}
}

func TestParseJWTTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseJWTToken("not-a-token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}

func TestValidateTokenAndFetchEmail(t *testing.T) {
	token, err := GenerateJWTToken("abc123", "bob@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	valid, email, err := ValidateTokenAndFetchEmail(token)
	if err != nil || !valid {
		t.Fatalf("Expected valid token, got valid=%v err=%v", valid, err)
	}
	if email != "bob@example.com" {
		t.Errorf("Expected email bob@example.com, got %s", email)
	}
}

func TestExtractNameFromEmail(t *testing.T) {
	if name := ExtractNameFromEmail("carol@example.com"); name != "carol" {
		t.Errorf("Expected carol, got %s", name)
	}
	if name := ExtractNameFromEmail("no-at-sign"); name != "no-at-sign" {
		t.Errorf("Expected input returned unchanged, got %s", name)
	}
}
