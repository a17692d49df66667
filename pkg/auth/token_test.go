package auth

import (
	"testing"
	"time"

	"github.com/civicworks/civicreport-backend/pkg/config"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	"github.com/google/uuid"
)

var testJWTConfig = config.JWTConfig{
	Secret:            "secret",
	Issuer:            "civicreport",
	ExpirationMinutes: 60,
}

func TestMintAndParseRoundTrip(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC()

	token, err := MintAccessToken(testJWTConfig, now, AccessTokenPayload{
		UserID: userID,
		Role:   enums.UserRoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseAccessToken(testJWTConfig, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != enums.UserRoleAdmin {
		t.Fatalf("expected admin role, got %s", claims.Role)
	}

	wantExpiry := now.Add(time.Hour)
	if got := claims.ExpiresAt.Time; got.Sub(wantExpiry) > time.Second || wantExpiry.Sub(got) > time.Second {
		t.Fatalf("expected 1h expiry, got %v", got)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issued := time.Now().UTC().Add(-2 * time.Hour)

	token, err := MintAccessToken(testJWTConfig, issued, AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleUser,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	if _, err := ParseAccessToken(testJWTConfig, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := MintAccessToken(testJWTConfig, time.Now().UTC(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleUser,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	other := testJWTConfig
	other.Secret = "different"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected signature mismatch to be rejected")
	}
}

func TestMintRejectsInvalidRole(t *testing.T) {
	_, err := MintAccessToken(testJWTConfig, time.Now().UTC(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRole("superuser"),
	})
	if err == nil {
		t.Fatal("expected invalid role to be rejected")
	}
}
