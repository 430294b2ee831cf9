package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/clickcart/backend/internal/config"
	"github.com/clickcart/backend/internal/constants"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-keep-it-long-enough"
	cfg.JWT.ExpireHours = 24
	cfg.Security.BcryptCost = 4
	return NewAuthService(cfg, repository.NewUserRepository(db)), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if user.Role != constants.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in plain text")
	}

	logged, token, expiresAt, err := svc.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, logged.ID)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("unexpected token or expiry: %q %v", token, expiresAt)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, err := svc.Register(RegisterInput{Username: "bob", Email: "bob@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "bob2", Email: "BOB@example.com", Password: "secret123"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "bob", Email: "other@example.com", Password: "secret123"}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	if _, err := svc.Register(RegisterInput{Username: "carol", Email: "carol@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, _, _, err := svc.Login("carol@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got: %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user := &models.User{
		ID:           42,
		Username:     "dave",
		Role:         constants.RoleAdmin,
		TokenVersion: 3,
	}
	token, _, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "dave" || claims.Role != constants.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenVersion != 3 {
		t.Fatalf("expected token version 3, got %d", claims.TokenVersion)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	claims := JWTClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign forged token failed: %v", err)
	}
	if _, err := svc.ParseJWT(forged); err == nil {
		t.Fatalf("expected error for token signed with wrong secret")
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{Username: "erin", Email: "erin@example.com", Password: "oldpass1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if err := svc.ChangePassword(user.ID, "wrong", "newpass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if err := svc.ChangePassword(user.ID, "oldpass1", "newpass1"); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}
	if _, _, _, err := svc.Login("erin@example.com", "newpass1"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
