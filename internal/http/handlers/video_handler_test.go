package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/services"
)

func newVideoEngine(videos VideoService, access AccessService, u *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(stubAuthSvc{}, stubSubSvc{}, access, stubCourseSvc{}, videos)
	r := gin.New()
	r.GET("/videos/course/:courseId", injectUser(u), h.ListCourseVideos)
	r.GET("/videos/:id", injectUser(u), h.GetVideo)
	r.POST("/videos/link/:linkId/use", injectUser(u), h.UseLink)
	r.POST("/videos", injectUser(u), h.CreateVideo)
	r.PUT("/videos/:id", injectUser(u), h.UpdateVideo)
	r.DELETE("/videos/:id", injectUser(u), h.DeleteVideo)
	return r
}

func TestListCourseVideos(t *testing.T) {
	courseID := uuid.NewString()
	videos := stubVideoSvc{
		listByCourse: func(_ context.Context, gotID string) ([]domain.Video, error) {
			if gotID != courseID {
				t.Fatalf("course id = %q", gotID)
			}
			return []domain.Video{{ID: uuid.NewString(), CourseID: courseID, Title: "Interfaces in depth"}}, nil
		},
	}
	r := newVideoEngine(videos, stubAccessSvc{}, testUser())

	w := perform(t, r, http.MethodGet, "/videos/course/"+courseID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}

	videos.listByCourse = func(context.Context, string) ([]domain.Video, error) {
		return nil, services.ErrCourseNotFound
	}
	r = newVideoEngine(videos, stubAccessSvc{}, testUser())
	w = perform(t, r, http.MethodGet, "/videos/course/"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing course: code = %d", w.Code)
	}
}

func TestGetVideo_IssuesLink(t *testing.T) {
	u := testUser()
	videoID := uuid.NewString()
	expires := time.Now().Add(time.Hour).UTC()
	access := stubAccessSvc{
		request: func(_ context.Context, gotUser *domain.User, gotID string) (*services.AccessGrant, error) {
			if gotUser.ID != u.ID || gotID != videoID {
				t.Fatalf("args: %q %q", gotUser.ID, gotID)
			}
			return &services.AccessGrant{
				Video: &domain.Video{ID: videoID, Title: "Interfaces in depth"},
				Link: &domain.AccessLink{
					ID:              uuid.NewString(),
					VideoID:         videoID,
					UserID:          u.ID,
					DestinationLink: "https://t.me/course_private?start=abc",
					ExpiresAt:       &expires,
				},
			}, nil
		},
	}
	r := newVideoEngine(stubVideoSvc{}, access, u)

	w := perform(t, r, http.MethodGet, "/videos/"+videoID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}
	var resp VideoAccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Video == nil || resp.Link.Link == "" || resp.Link.IsUsed || resp.Link.ExpiresAt == nil {
		t.Fatalf("payload: %s", w.Body.String())
	}
}

func TestGetVideo_SubscriptionRejection(t *testing.T) {
	access := stubAccessSvc{
		request: func(context.Context, *domain.User, string) (*services.AccessGrant, error) {
			return nil, &services.SubscriptionError{Instagram: true, Telegram: false}
		},
	}
	r := newVideoEngine(stubVideoSvc{}, access, testUser())

	w := perform(t, r, http.MethodGet, "/videos/"+uuid.NewString(), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}
	var resp SubscriptionErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeSubscriptionRequired {
		t.Fatalf("code = %q", resp.Code)
	}
	if !resp.Subscribed.Instagram || resp.Subscribed.Telegram {
		t.Fatalf("subscribed: %+v", resp.Subscribed)
	}
	if len(resp.Missing) != 1 || resp.Missing[0] != "Telegram" {
		t.Fatalf("missing: %v", resp.Missing)
	}
}

func TestAccessError_Taxonomy(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode string
	}{
		{"video missing", services.ErrVideoNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"link missing", services.ErrLinkNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"foreign link", services.ErrLinkForbidden, http.StatusForbidden, ErrCodeForbidden},
		{"spent link", services.ErrLinkUsed, http.StatusConflict, ErrCodeLinkUsed},
		{"stale link", services.ErrLinkExpired, http.StatusGone, ErrCodeLinkExpired},
		{"storage failure", context.DeadlineExceeded, http.StatusInternalServerError, ErrCodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			access := stubAccessSvc{
				consume: func(context.Context, *domain.User, string) (*domain.AccessLink, error) {
					return nil, tc.err
				},
			}
			r := newVideoEngine(stubVideoSvc{}, access, testUser())
			w := perform(t, r, http.MethodPost, "/videos/link/"+uuid.NewString()+"/use", nil)
			if w.Code != tc.wantHTTP || errCode(t, w) != tc.wantCode {
				t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUseLink_OK(t *testing.T) {
	u := testUser()
	linkID := uuid.NewString()
	usedAt := time.Now().UTC()
	access := stubAccessSvc{
		consume: func(_ context.Context, _ *domain.User, gotID string) (*domain.AccessLink, error) {
			if gotID != linkID {
				t.Fatalf("link id = %q", gotID)
			}
			return &domain.AccessLink{
				ID:              linkID,
				UserID:          u.ID,
				DestinationLink: "https://t.me/course_private?start=abc",
				IsUsed:          true,
				UsedAt:          &usedAt,
			}, nil
		},
	}
	r := newVideoEngine(stubVideoSvc{}, access, u)

	w := perform(t, r, http.MethodPost, "/videos/link/"+linkID+"/use", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
	}
	var resp ConsumeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.IsUsed || resp.UsedAt == nil {
		t.Fatalf("payload: %s", w.Body.String())
	}

	// Bad link id never reaches the service.
	w = perform(t, r, http.MethodPost, "/videos/link/not-a-uuid/use", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: code = %d", w.Code)
	}
}

func TestCreateVideo_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantHTTP int
	}{
		{"invalid", services.ErrInvalidInput, http.StatusBadRequest},
		{"orphan", services.ErrCourseNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			videos := stubVideoSvc{
				create: func(context.Context, services.VideoInput) (*domain.Video, error) {
					return nil, tc.err
				},
			}
			r := newVideoEngine(videos, stubAccessSvc{}, testUser())
			w := perform(t, r, http.MethodPost, "/videos", gin.H{"courseId": uuid.NewString(), "title": "x"})
			if w.Code != tc.wantHTTP {
				t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
			}
		})
	}
}
