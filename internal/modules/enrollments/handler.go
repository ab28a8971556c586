package enrollments

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
	rg.POST("/enrollments", h.Enroll)
	rg.GET("/enrollments/student", h.ListMine)
}

func (h *Handler) Enroll(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or user not found"})
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CourseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Course ID is required"})
		return
	}

	e, err := h.service.Enroll(c.Request.Context(), *p, req.CourseID)
	if err != nil {
		switch err {
		case ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "Only students can enroll in courses"})
		case ErrCourseNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case ErrAlreadyEnrolled:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Student is already enrolled in this course"})
		case ErrValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Course ID is required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error enrolling in course: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Enrollment successful",
		"enrollment": toResponse(*e),
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or user not found"})
		return
	}

	details, err := h.service.ListMine(c.Request.Context(), *p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting enrollments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"enrollments": details})
}
