// Handler wiring and shared service contracts.
//
// Handlers are transport-thin: they validate input, call application services
// through the interfaces below, and translate results into HTTP responses.
// The concrete services live in internal/services; interfaces keep transport
// concerns separate from business logic and make handler tests cheap.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/http/middleware"
	"github.com/oqilov/go-course-backend/internal/services"
	"github.com/oqilov/go-course-backend/internal/utils"
)

// AuthService defines the account lifecycle operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, *services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, userID string) error
	Me(ctx context.Context, userID string) (*domain.User, error)
}

// SubscriptionService defines the verify/status operations.
type SubscriptionService interface {
	VerifyInstagram(ctx context.Context, userID, username string) (*domain.User, error)
	VerifyTelegram(ctx context.Context, userID, username, externalUserID string) (*domain.User, error)
	Status(ctx context.Context, userID string) (*domain.User, error)
}

// AccessService defines the gated link issuance and consumption operations.
type AccessService interface {
	RequestAccess(ctx context.Context, u *domain.User, videoID string) (*services.AccessGrant, error)
	Consume(ctx context.Context, u *domain.User, linkID string) (*domain.AccessLink, error)
}

// CourseService defines catalog management for courses.
type CourseService interface {
	Create(ctx context.Context, instructorID string, in services.CourseInput) (*domain.Course, error)
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Course, int64, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Update(ctx context.Context, id string, in services.CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// VideoService defines catalog management for videos.
type VideoService interface {
	Create(ctx context.Context, in services.VideoInput) (*domain.Video, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Video, error)
	Get(ctx context.Context, id string) (*domain.Video, error)
	Update(ctx context.Context, id string, in services.VideoInput) (*domain.Video, error)
	Delete(ctx context.Context, id string) error
}

// Handlers groups the HTTP endpoints for auth, subscriptions, courses, videos
// and the access gate.
type Handlers struct {
	authSvc   AuthService
	subSvc    SubscriptionService
	accessSvc AccessService
	courseSvc CourseService
	videoSvc  VideoService
}

// New constructs a Handlers instance bound to the given services.
func New(authSvc AuthService, subSvc SubscriptionService, accessSvc AccessService, courseSvc CourseService, videoSvc VideoService) *Handlers {
	return &Handlers{
		authSvc:   authSvc,
		subSvc:    subSvc,
		accessSvc: accessSvc,
		courseSvc: courseSvc,
		videoSvc:  videoSvc,
	}
}

// currentUser returns the authenticated user attached by the auth middleware.
// Routes registered behind RequireAuth always have one; a nil return means a
// wiring bug, which the caller treats as unauthorized.
func currentUser(c *gin.Context) *domain.User {
	return middleware.UserFrom(c)
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// clampPagination reads page and page_size query params, normalized to the
// shared listing bounds.
func clampPagination(c *gin.Context) (page, pageSize int) {
	return utils.ClampPage(c.Query("page")), utils.ClampPageSize(c.Query("page_size"))
}
