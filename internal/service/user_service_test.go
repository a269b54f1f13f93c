package service

import (
	"context"
	"errors"
	"testing"

	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/testutil"
	"coursehub_backend/internal/util"
)

func TestSetRoleIsIdempotent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewUserService(users, repository.NewMaterialRepository(db), repository.NewActivityLogRepository(db))
	ctx := context.Background()

	_ = users.Create(ctx, &model.User{Username: "bob", Email: "b@x.com", Password: "h", Role: model.RoleUser})

	for i := 0; i < 2; i++ {
		if err := svc.SetRole(ctx, "b@x.com", "admin"); err != nil {
			t.Fatalf("SetRole #%d error: %v", i+1, err)
		}
	}
	u, _ := users.FindByEmail(ctx, "b@x.com")
	if u.Role != model.RoleAdmin {
		t.Fatalf("role=%q, want admin", u.Role)
	}

	if err := svc.SetRole(ctx, "ghost@x.com", "admin"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("unknown email err=%v", err)
	}
	if err := svc.SetRole(ctx, "b@x.com", "owner"); !errors.Is(err, util.ErrInvalidRole) {
		t.Fatalf("invalid role err=%v", err)
	}
}

func TestFeedbackRatingBounds(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewFeedbackService(
		repository.NewCommentRepository(db),
		repository.NewRatingRepository(db),
		repository.NewFavoriteRepository(db),
	)
	ctx := context.Background()

	for _, v := range []int{0, 6, -1} {
		if err := svc.AddRating(ctx, &model.Rating{MaterialID: 1, UserID: 1, RatingValue: v}); !errors.Is(err, util.ErrRatingOutOfRange) {
			t.Fatalf("value %d err=%v, want ErrRatingOutOfRange", v, err)
		}
	}
	summary, _ := svc.RatingSummary(ctx, 1)
	if summary.Count != 0 {
		t.Fatalf("rejected ratings were stored: %+v", summary)
	}

	for v := 1; v <= 5; v++ {
		if err := svc.AddRating(ctx, &model.Rating{MaterialID: 1, UserID: 1, RatingValue: v}); err != nil {
			t.Fatalf("value %d error: %v", v, err)
		}
	}
	summary, _ = svc.RatingSummary(ctx, 1)
	if summary.Count != 5 || summary.Average != 3 {
		t.Fatalf("summary=%+v, want count=5 average=3", summary)
	}
}

func TestCatalogRejectsBlankNames(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewCatalogService(repository.NewDepartmentRepository(db), repository.NewCourseRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateDepartment(ctx, "  "); util.KindOf(err) != util.KindValidation {
		t.Fatalf("blank department err=%v", err)
	}
	if err := svc.CreateCourse(ctx, &model.Course{}); util.KindOf(err) != util.KindValidation {
		t.Fatalf("blank course err=%v", err)
	}

	if _, err := svc.CreateDepartment(ctx, "CS"); err != nil {
		t.Fatalf("CreateDepartment error: %v", err)
	}
	if _, err := svc.CreateDepartment(ctx, "CS"); util.KindOf(err) != util.KindStore {
		t.Fatalf("duplicate department err=%v, want store", err)
	}
}
