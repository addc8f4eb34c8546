package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCourseCreate_NormalizesFields(t *testing.T) {
	svc := NewCourseService(newTestDB(t))

	c, err := svc.Create(context.Background(), uuid.NewString(), CourseInput{
		Title:    "  Go   Fundamentals  ",
		Price:    19.99,
		Category: "proGRAMming",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Title != "Go Fundamentals" {
		t.Fatalf("title = %q", c.Title)
	}
	if c.Category != "Programming" {
		t.Fatalf("category = %q, want title-cased", c.Category)
	}
	if !c.IsActive {
		t.Fatal("new course must be active")
	}
}

func TestCourseCreate_Validation(t *testing.T) {
	svc := NewCourseService(newTestDB(t))

	if _, err := svc.Create(context.Background(), "i1", CourseInput{Title: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank title: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(context.Background(), "i1", CourseInput{Title: "x", Price: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative price: err = %v, want ErrInvalidInput", err)
	}
}

func TestCourseListPage(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(ctx, "i1", CourseInput{Title: "Course", Price: 1}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	items, total, err := svc.ListPage(ctx, 1, 3)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 5 || len(items) != 3 {
		t.Fatalf("total = %d, page len = %d", total, len(items))
	}

	// Bad paging inputs fall back to defaults.
	items, total, err = svc.ListPage(ctx, -1, 0)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 5 || len(items) != 5 {
		t.Fatalf("defaults: total = %d, page len = %d", total, len(items))
	}
}

func TestCourseGet_InactiveHidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	c, err := svc.Create(ctx, "i1", CourseInput{Title: "Hidden", Price: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := db.Model(c).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestCourseUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	c, err := svc.Create(ctx, "i1", CourseInput{Title: "Old Title", Price: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(ctx, c.ID, CourseInput{Title: "New Title", Price: 9})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "New Title" || got.Price != 9 {
		t.Fatalf("updated = %+v", got)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("deleted course still visible: %v", err)
	}
	if err := svc.Delete(ctx, c.ID); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("double delete: err = %v, want ErrCourseNotFound", err)
	}
}
