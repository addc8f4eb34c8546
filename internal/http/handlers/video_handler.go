// Video HTTP handlers, including the subscription-gated access flow.
//
// Catalog endpoints:
//   - GET    /videos/course/{courseId}  (public, metadata only)
//   - POST   /videos                    (admin)
//   - PUT    /videos/{id}               (admin)
//   - DELETE /videos/{id}               (admin)
//
// Gated endpoints — both run a live subscription reconciliation:
//   - GET  /videos/{id}                 issues (or re-returns) the one-time link
//   - POST /videos/link/{linkId}/use    consumes the link, exactly once
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/services"
)

// VideoRequest is the JSON payload for creating or updating a video.
type VideoRequest struct {
	CourseID    string `json:"courseId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Title       string `json:"title" example:"Interfaces in depth"`
	Description string `json:"description"`
	Position    int    `json:"position" example:"3"`
	Duration    int    `json:"duration" example:"540"`
}

func (r VideoRequest) input() services.VideoInput {
	return services.VideoInput{
		CourseID:    r.CourseID,
		Title:       r.Title,
		Description: r.Description,
		Position:    r.Position,
		Duration:    r.Duration,
	}
}

// AccessLinkDescriptor is the issued-link view returned by the gated video
// endpoint.
type AccessLinkDescriptor struct {
	ID        string     `json:"id"`
	Link      string     `json:"link"`
	IsUsed    bool       `json:"is_used"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// VideoAccessResponse bundles video metadata with the access link descriptor.
type VideoAccessResponse struct {
	Video *domain.Video        `json:"video"`
	Link  AccessLinkDescriptor `json:"link"`
}

// ConsumeResponse confirms a consumed link.
type ConsumeResponse struct {
	ID     string     `json:"id"`
	Link   string     `json:"link"`
	IsUsed bool       `json:"is_used"`
	UsedAt *time.Time `json:"used_at"`
}

// ListCourseVideos godoc
// @ID          listCourseVideos
// @Summary     List a course's videos
// @Description Returns video metadata in position order. No destination links are included; use the gated video endpoint.
// @Tags        Videos
// @Produce     json
//
// @Param       courseId  path  string  true  "Course ID (UUID)"  format(uuid)
//
// @Success     200  {array}  domain.Video
// @Failure     404  {object} handlers.ErrorResponse "Course not found"
// @Router      /videos/course/{courseId} [get]
func (h *Handlers) ListCourseVideos(c *gin.Context) {
	courseID := c.Param("courseId")
	if _, err := uuid.Parse(courseID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "course id must be a UUID")
		return
	}
	items, err := h.videoSvc.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "course not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list videos")
		return
	}
	ok(c, http.StatusOK, items)
}

// GetVideo godoc
// @ID          getVideo
// @Summary     Gated video access
// @Description Re-verifies both platform subscriptions live, then issues (or re-returns) the single-use access link for this video.
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Video ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.VideoAccessResponse
// @Failure     403  {object} handlers.SubscriptionErrorResponse "Subscription required"
// @Failure     404  {object} handlers.ErrorResponse "Video not found"
// @Router      /videos/{id} [get]
func (h *Handlers) GetVideo(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "video id must be a UUID")
		return
	}

	grant, err := h.accessSvc.RequestAccess(c.Request.Context(), u, id)
	if err != nil {
		h.accessError(c, err)
		return
	}
	ok(c, http.StatusOK, VideoAccessResponse{
		Video: grant.Video,
		Link: AccessLinkDescriptor{
			ID:        grant.Link.ID,
			Link:      grant.Link.DestinationLink,
			IsUsed:    grant.Link.IsUsed,
			ExpiresAt: grant.Link.ExpiresAt,
		},
	})
}

// UseLink godoc
// @ID          useLink
// @Summary     Consume an access link
// @Description Marks the link used after a second live subscription check. The transition is one-way; a spent link is rejected.
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
//
// @Param       linkId  path  string  true  "Access link ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.ConsumeResponse
// @Failure     403  {object} handlers.SubscriptionErrorResponse "Subscription required"
// @Failure     404  {object} handlers.ErrorResponse "Link not found"
// @Failure     409  {object} handlers.ErrorResponse "Link already used"
// @Failure     410  {object} handlers.ErrorResponse "Link expired"
// @Router      /videos/link/{linkId}/use [post]
func (h *Handlers) UseLink(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	linkID := c.Param("linkId")
	if _, err := uuid.Parse(linkID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "link id must be a UUID")
		return
	}

	link, err := h.accessSvc.Consume(c.Request.Context(), u, linkID)
	if err != nil {
		h.accessError(c, err)
		return
	}
	ok(c, http.StatusOK, ConsumeResponse{
		ID:     link.ID,
		Link:   link.DestinationLink,
		IsUsed: link.IsUsed,
		UsedAt: link.UsedAt,
	})
}

// CreateVideo godoc
// @ID          createVideo
// @Summary     Add a video to a course
// @Tags        Videos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.VideoRequest  true  "Video payload"
//
// @Success     201  {object} domain.Video
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Course not found"
// @Router      /videos [post]
func (h *Handlers) CreateVideo(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	v, err := h.videoSvc.Create(c.Request.Context(), req.input())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "courseId and title required")
		case errors.Is(err, services.ErrCourseNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "course not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create video")
		}
		return
	}
	ok(c, http.StatusCreated, v)
}

// UpdateVideo godoc
// @ID          updateVideo
// @Summary     Update a video
// @Tags        Videos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string                 true  "Video ID (UUID)"  format(uuid)
// @Param       body  body  handlers.VideoRequest  true  "Fields to update"
//
// @Success     200  {object} domain.Video
// @Failure     404  {object} handlers.ErrorResponse "Video not found"
// @Router      /videos/{id} [put]
func (h *Handlers) UpdateVideo(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "video id must be a UUID")
		return
	}
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	v, err := h.videoSvc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		h.videoError(c, err)
		return
	}
	ok(c, http.StatusOK, v)
}

// DeleteVideo godoc
// @ID          deleteVideo
// @Summary     Delete a video
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Video ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     404  {object} handlers.ErrorResponse "Video not found"
// @Router      /videos/{id} [delete]
func (h *Handlers) DeleteVideo(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "video id must be a UUID")
		return
	}
	if err := h.videoSvc.Delete(c.Request.Context(), id); err != nil {
		h.videoError(c, err)
		return
	}
	noContent(c)
}

// accessError maps access-gate errors onto the HTTP taxonomy. Subscription
// rejections carry the extended per-platform payload.
func (h *Handlers) accessError(c *gin.Context, err error) {
	var subErr *services.SubscriptionError
	switch {
	case errors.As(err, &subErr):
		failSubscription(c, subErr)
	case errors.Is(err, services.ErrVideoNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "video not found")
	case errors.Is(err, services.ErrLinkNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "access link not found")
	case errors.Is(err, services.ErrLinkForbidden):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "access link belongs to another user")
	case errors.Is(err, services.ErrLinkUsed):
		fail(c, http.StatusConflict, ErrCodeLinkUsed, "access link already used")
	case errors.Is(err, services.ErrLinkExpired):
		fail(c, http.StatusGone, ErrCodeLinkExpired, "access link expired")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "access request failed")
	}
}

func (h *Handlers) videoError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrVideoNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "video not found")
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeInternal, "video operation failed")
}
