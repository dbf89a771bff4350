package middleware

import (
	"testing"
	"time"

	"attendance_go/config"
	"attendance_go/models"

	"github.com/golang-jwt/jwt/v4"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: time.Hour,
	}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestTokenRemainingTTLFreshToken(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken(&models.User{
		BaseModel: models.BaseModel{ID: 1},
		Username:  "teacher1",
		Role:      models.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	ttl := tokenRemainingTTL(token, 5*time.Minute)
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("expected TTL within (0, 1h], got %v", ttl)
	}
	if ttl < 59*time.Minute {
		t.Fatalf("expected TTL close to the exp claim, got %v", ttl)
	}
}

func TestTokenRemainingTTLExpiredToken(t *testing.T) {
	setTestConfig(t)

	claims := &Claims{
		UserID:   1,
		Username: "teacher1",
		Role:     models.RoleTeacher,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		t.Fatalf("unexpected error signing token: %v", err)
	}

	if ttl := tokenRemainingTTL(token, 5*time.Minute); ttl != 0 {
		t.Fatalf("expected zero TTL for an expired token, got %v", ttl)
	}
}

func TestTokenRemainingTTLUnparseable(t *testing.T) {
	setTestConfig(t)

	fallback := 5 * time.Minute
	if ttl := tokenRemainingTTL("not-a-jwt", fallback); ttl != fallback {
		t.Fatalf("expected fallback TTL %v, got %v", fallback, ttl)
	}
}

func TestTokenRemainingTTLMissingExp(t *testing.T) {
	setTestConfig(t)

	claims := &Claims{UserID: 1, Username: "teacher1", Role: models.RoleTeacher}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		t.Fatalf("unexpected error signing token: %v", err)
	}

	fallback := 5 * time.Minute
	if ttl := tokenRemainingTTL(token, fallback); ttl != fallback {
		t.Fatalf("expected fallback TTL %v for a token without exp, got %v", fallback, ttl)
	}
}
