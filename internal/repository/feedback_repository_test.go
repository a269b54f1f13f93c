package repository

import (
	"context"
	"testing"

	"coursehub_backend/internal/model"
	"coursehub_backend/internal/testutil"
)

func TestRatingRepositorySummary(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	for _, v := range []int{5, 4, 3} {
		if err := repo.Create(ctx, &model.Rating{MaterialID: 1, UserID: 1, RatingValue: v}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	_ = repo.Create(ctx, &model.Rating{MaterialID: 2, UserID: 1, RatingValue: 1})

	summary, err := repo.Summary(ctx, 1)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if summary.Count != 3 || summary.Average != 4 {
		t.Fatalf("summary=%+v, want count=3 average=4", summary)
	}

	empty, err := repo.Summary(ctx, 99)
	if err != nil || empty.Count != 0 || empty.Average != 0 {
		t.Fatalf("empty summary err=%v summary=%+v", err, empty)
	}
}

func TestCommentAndActivityLogListing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	comments := NewCommentRepository(db)
	logs := NewActivityLogRepository(db)
	ctx := context.Background()

	_ = comments.Create(ctx, &model.Comment{MaterialID: 3, UserID: 1, CommentText: "first"})
	_ = comments.Create(ctx, &model.Comment{MaterialID: 3, UserID: 2, CommentText: "second"})
	_ = comments.Create(ctx, &model.Comment{MaterialID: 4, UserID: 2, CommentText: "other"})

	got, err := comments.ListByMaterial(ctx, 3)
	if err != nil || len(got) != 2 || got[0].CommentText != "first" {
		t.Fatalf("ListByMaterial err=%v got=%+v", err, got)
	}

	_ = logs.Create(ctx, &model.ActivityLog{UserID: 1, Action: "viewed material 3"})
	entries, err := logs.ListByUser(ctx, 1)
	if err != nil || len(entries) != 1 || entries[0].Action != "viewed material 3" {
		t.Fatalf("ListByUser err=%v entries=%+v", err, entries)
	}
}

func TestDepartmentRepositoryFindByName(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewDepartmentRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Department{Name: "CS"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := repo.Create(ctx, &model.Department{Name: "CS"}); err == nil {
		t.Fatalf("expected duplicate department name to fail")
	}

	dep, err := repo.FindByName(ctx, "CS")
	if err != nil || dep.ID == 0 {
		t.Fatalf("FindByName err=%v dep=%+v", err, dep)
	}
}
