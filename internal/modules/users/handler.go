package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"est/internal/domain"
	"est/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.Me)
	rg.GET("/users", h.ListUsers)
	rg.GET("/users/role/:role", h.ListUsersByRole)
}

// resolve authenticates the request and returns the upserted user. Unlike
// the other services, resolution here is done per handler because it
// carries the users-table side effect.
func (h *Handler) resolve(c *gin.Context) (*domain.User, bool) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No valid authorization token provided"})
		return nil, false
	}

	user, err := h.service.ResolveCurrent(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or user not found"})
		return nil, false
	}
	return user, true
}

func (h *Handler) Me(c *gin.Context) {
	user, ok := h.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toResponse(*user, false)})
}

func (h *Handler) ListUsers(c *gin.Context) {
	current, ok := h.resolve(c)
	if !ok {
		return
	}

	list, err := h.service.Users(c.Request.Context(), current)
	if err != nil {
		switch err {
		case ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized. Admin access required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": toResponses(list, true)})
}

func (h *Handler) ListUsersByRole(c *gin.Context) {
	role := c.Param("role")

	current, ok := h.resolve(c)
	if !ok {
		return
	}

	list, err := h.service.UsersByRole(c.Request.Context(), current, role)
	if err != nil {
		switch err {
		case ErrInvalidRole:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role specified"})
		case ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized. Admin or teacher access required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": toResponses(list, false)})
}
