package services

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/repo"
)

// newTestDB opens a uniquely-named shared in-memory SQLite database with the
// full migration applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// stubVerifier implements both verifier interfaces with scripted results and
// call counting.
type stubVerifier struct {
	instagram bool
	telegram  bool

	instagramCalls int
	telegramCalls  int
}

func (s *stubVerifier) CheckFollower(ctx context.Context, username string) bool {
	s.instagramCalls++
	return s.instagram
}

func (s *stubVerifier) CheckMember(ctx context.Context, externalUserID string) bool {
	s.telegramCalls++
	return s.telegram
}

func seedUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), db,
		"student_"+uuid.NewString()[:8],
		fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		"$2a$12$notarealhash")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedVerifiedUser seeds a user whose stored identities allow live checks on
// both platforms.
func seedVerifiedUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	u := seedUser(t, db)
	ig := "insta_user"
	tg := "tg_user"
	extID := "123456789"
	u.Instagram.Username = &ig
	u.Telegram.Username = &tg
	u.Telegram.ExternalUserID = &extID
	if err := repo.UpdateSubscriptions(context.Background(), db, u.ID, u.Instagram, u.Telegram); err != nil {
		t.Fatalf("seed identities: %v", err)
	}
	return u
}

func seedCourseWithVideo(t *testing.T, db *gorm.DB) (*domain.Course, *domain.Video) {
	t.Helper()
	ctx := context.Background()
	c := &domain.Course{
		Title:        "Go Fundamentals",
		Description:  "intro course",
		Price:        49.99,
		Category:     "Programming",
		InstructorID: uuid.NewString(),
	}
	if err := repo.CreateCourse(ctx, db, c); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	v := &domain.Video{
		CourseID: c.ID,
		Title:    "Lesson 1",
		Position: 1,
		Duration: 600,
	}
	if err := repo.CreateVideo(ctx, db, v); err != nil {
		t.Fatalf("seed video: %v", err)
	}
	return c, v
}
