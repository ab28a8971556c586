package courses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"est/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses", h.ListCourses)
	rg.GET("/courses/:id", h.GetCourse)
	rg.PUT("/courses/:id", h.UpdateCourse)
	rg.DELETE("/courses/:id", h.DeleteCourse)
}

func (h *Handler) ListCourses(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or user not found"})
		return
	}

	list, err := h.service.List(c.Request.Context(), *p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching courses: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": toResponses(list)})
}

func (h *Handler) GetCourse(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or user not found"})
		return
	}

	course, err := h.service.Get(c.Request.Context(), *p, c.Param("id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to view this course"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching course: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": toResponse(*course)})
}

func (h *Handler) UpdateCourse(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or user not found"})
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	course, err := h.service.Update(c.Request.Context(), *p, c.Param("id"), req)
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to update this course"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating course: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Course updated successfully",
		"course": gin.H{
			"course_id":   course.CourseID,
			"title":       course.Title,
			"description": course.Description,
		},
	})
}

func (h *Handler) DeleteCourse(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or user not found"})
		return
	}

	err := h.service.Delete(c.Request.Context(), *p, c.Param("id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to delete this course"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting course: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
