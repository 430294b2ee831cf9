package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/clickcart/backend/internal/constants"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserServiceTest(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewUserService(repository.NewUserRepository(db), repository.NewProductRepository(db)), db
}

func strPtr(v string) *string {
	return &v
}

func TestUpdateProfileUniqueness(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	first := createCommentTestUser(t, db, "first")
	createCommentTestUser(t, db, "second")

	if _, err := svc.UpdateProfile(first.ID, UpdateProfileInput{Username: strPtr("second")}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got: %v", err)
	}
	if _, err := svc.UpdateProfile(first.ID, UpdateProfileInput{Email: strPtr("second@example.com")}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}

	updated, err := svc.UpdateProfile(first.ID, UpdateProfileInput{
		Username: strPtr("renamed"),
		Email:    strPtr("Renamed@Example.com"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.Username != "renamed" {
		t.Fatalf("expected renamed, got %s", updated.Username)
	}
	if updated.Email != "renamed@example.com" {
		t.Fatalf("expected lowercased email, got %s", updated.Email)
	}
}

func TestUpdateRoleBumpsTokenVersion(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	user := createCommentTestUser(t, db, "promote")

	if _, err := svc.UpdateRole(user.ID, "superuser"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got: %v", err)
	}

	updated, err := svc.UpdateRole(user.ID, constants.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole error: %v", err)
	}
	if updated.Role != constants.RoleAdmin {
		t.Fatalf("expected admin role, got %s", updated.Role)
	}
	if updated.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("expected token version bump, got %d", updated.TokenVersion)
	}
}

func TestToggleWishlist(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	user := createCommentTestUser(t, db, "wisher")
	product := createCartTestProduct(t, db, "wish-product", 25)

	if _, err := svc.ToggleWishlist(user.ID, 999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}

	in, err := svc.ToggleWishlist(user.ID, product.ID)
	if err != nil {
		t.Fatalf("ToggleWishlist error: %v", err)
	}
	if !in {
		t.Fatalf("expected product added to wishlist")
	}
	items, err := svc.ListWishlist(user.ID)
	if err != nil {
		t.Fatalf("ListWishlist error: %v", err)
	}
	if len(items) != 1 || items[0].ID != product.ID {
		t.Fatalf("unexpected wishlist: %+v", items)
	}

	in, err = svc.ToggleWishlist(user.ID, product.ID)
	if err != nil {
		t.Fatalf("ToggleWishlist error: %v", err)
	}
	if in {
		t.Fatalf("expected product removed from wishlist")
	}
	items, err = svc.ListWishlist(user.ID)
	if err != nil {
		t.Fatalf("ListWishlist error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %d items", len(items))
	}
}

func TestDeleteUser(t *testing.T) {
	svc, db := setupUserServiceTest(t)
	user := createCommentTestUser(t, db, "gone")

	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.Get(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
	if err := svc.Delete(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got: %v", err)
	}
}
