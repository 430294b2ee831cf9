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

func setupCommentServiceTest(t *testing.T) (*CommentService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:comment_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewCommentService(repository.NewCommentRepository(db), repository.NewProductRepository(db)), db
}

func createCommentTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Role:         constants.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return &user
}

func TestCreateCommentRatingBounds(t *testing.T) {
	svc, db := setupCommentServiceTest(t)
	user := createCommentTestUser(t, db, "reviewer")
	product := createCartTestProduct(t, db, "comment-rating", 10)

	if _, err := svc.Create(CreateCommentInput{
		UserID:    user.ID,
		ProductID: product.ID,
		Content:   "too low",
		Rating:    0,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for rating 0, got: %v", err)
	}
	if _, err := svc.Create(CreateCommentInput{
		UserID:    user.ID,
		ProductID: product.ID,
		Content:   "too high",
		Rating:    6,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for rating 6, got: %v", err)
	}

	comment, err := svc.Create(CreateCommentInput{
		UserID:    user.ID,
		ProductID: product.ID,
		Content:   "  great product  ",
		Rating:    5,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if comment.Content != "great product" {
		t.Fatalf("expected trimmed content, got %q", comment.Content)
	}
	if comment.User.Username != "reviewer" {
		t.Fatalf("expected author preloaded, got: %+v", comment.User)
	}
}

func TestCreateCommentUnknownProduct(t *testing.T) {
	svc, db := setupCommentServiceTest(t)
	user := createCommentTestUser(t, db, "ghost")

	if _, err := svc.Create(CreateCommentInput{
		UserID:    user.ID,
		ProductID: 999,
		Content:   "where is it",
		Rating:    3,
	}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
	if _, err := svc.ListByProduct(999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for list, got: %v", err)
	}
}

func TestDeleteCommentOwnerOrAdmin(t *testing.T) {
	svc, db := setupCommentServiceTest(t)
	author := createCommentTestUser(t, db, "author")
	other := createCommentTestUser(t, db, "other")
	product := createCartTestProduct(t, db, "comment-delete", 10)

	comment, err := svc.Create(CreateCommentInput{
		UserID:    author.ID,
		ProductID: product.ID,
		Content:   "to be deleted",
		Rating:    4,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(comment.ID, other.ID, constants.RoleUser); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other user, got: %v", err)
	}
	if err := svc.Delete(comment.ID, other.ID, constants.RoleAdmin); err != nil {
		t.Fatalf("admin delete error: %v", err)
	}

	comments, err := svc.ListByProduct(product.ID)
	if err != nil {
		t.Fatalf("ListByProduct error: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected no comments after delete, got %d", len(comments))
	}
	if err := svc.Delete(comment.ID, author.ID, constants.RoleUser); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted comment, got: %v", err)
	}
}
