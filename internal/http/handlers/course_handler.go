// Course HTTP handlers.
//
// This file exposes REST endpoints for the course catalog:
//   - GET    /courses        (public, paginated, ETag support)
//   - GET    /courses/{id}   (public)
//   - POST   /courses        (admin)
//   - PUT    /courses/{id}   (admin)
//   - DELETE /courses/{id}   (admin)
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/repo"
	"github.com/oqilov/go-course-backend/internal/services"
	"github.com/oqilov/go-course-backend/internal/utils"
)

// CourseRequest is the JSON payload for creating or updating a course.
type CourseRequest struct {
	Title       string  `json:"title" example:"Go Fundamentals"`
	Description string  `json:"description" example:"From zero to goroutines"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	Price       float64 `json:"price" example:"49.99"`
	Category    string  `json:"category" example:"Programming"`
}

func (r CourseRequest) input() services.CourseInput {
	return services.CourseInput{
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		Price:       r.Price,
		Category:    r.Category,
	}
}

// ListCoursesResponse wraps a page of courses and pagination information.
type ListCoursesResponse struct {
	Courses    []domain.Course `json:"courses"`
	Pagination Pagination      `json:"pagination"`
}

// ListCourses godoc
// @ID          listCourses
// @Summary     List courses (paginated)
// @Description Returns a page of active courses. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Courses
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       page           query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListCoursesResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /courses [get]
func (h *Handlers) ListCourses(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, isConcrete := h.courseSvc.(*services.CourseService); isConcrete {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.CoursesStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"courses:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.courseSvc.ListPage(ctx, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list courses")
		return
	}

	totalPages := utils.TotalPages(total, pageSize)
	ok(c, http.StatusOK, ListCoursesResponse{
		Courses: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetCourse godoc
// @ID          getCourse
// @Summary     Get one course
// @Tags        Courses
// @Produce     json
//
// @Param       id  path  string  true  "Course ID (UUID)"  format(uuid)
//
// @Success     200  {object} domain.Course
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Course not found"
// @Router      /courses/{id} [get]
func (h *Handlers) GetCourse(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "course id must be a UUID")
		return
	}
	course, err := h.courseSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.courseError(c, err)
		return
	}
	ok(c, http.StatusOK, course)
}

// CreateCourse godoc
// @ID          createCourse
// @Summary     Create a course
// @Tags        Courses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CourseRequest  true  "Course payload"
//
// @Success     201  {object} domain.Course
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Admin only"
// @Router      /courses [post]
func (h *Handlers) CreateCourse(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), u.ID, req.input())
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title required, price must be non-negative")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create course")
		return
	}
	ok(c, http.StatusCreated, course)
}

// UpdateCourse godoc
// @ID          updateCourse
// @Summary     Update a course
// @Tags        Courses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string                  true  "Course ID (UUID)"  format(uuid)
// @Param       body  body  handlers.CourseRequest  true  "Fields to update"
//
// @Success     200  {object} domain.Course
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Course not found"
// @Router      /courses/{id} [put]
func (h *Handlers) UpdateCourse(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "course id must be a UUID")
		return
	}
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		h.courseError(c, err)
		return
	}
	ok(c, http.StatusOK, course)
}

// DeleteCourse godoc
// @ID          deleteCourse
// @Summary     Delete a course
// @Tags        Courses
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Course ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     404  {object} handlers.ErrorResponse "Course not found"
// @Router      /courses/{id} [delete]
func (h *Handlers) DeleteCourse(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "course id must be a UUID")
		return
	}
	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		h.courseError(c, err)
		return
	}
	noContent(c)
}

func (h *Handlers) courseError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrCourseNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "course not found")
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeInternal, "course operation failed")
}
