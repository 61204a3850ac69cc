package jwt

import (
	"testing"
	"time"

	"clinic-scheduling-api/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()
	roles := []string{"PACIENTE", "PROFESIONAL"}

	token, tokenID, err := svc.GenerateAccessToken(userID, "user@clinic.local", roles)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if tokenID == "" {
		t.Fatal("token ID should not be empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "user@clinic.local" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "PACIENTE" || claims.Roles[1] != "PROFESIONAL" {
		t.Errorf("Roles = %v", claims.Roles)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "user@clinic.local", []string{"PACIENTE"})
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %q, want refresh", claims.TokenType)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "user@clinic.local", []string{"PACIENTE"})
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	other := NewJWTService(config.JWTConfig{
		Secret:        "different-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret should not validate")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := testService().ValidateToken("not.a.jwt"); err == nil {
		t.Error("garbage input should not validate")
	}
}
