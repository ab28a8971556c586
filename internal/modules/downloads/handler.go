package downloads

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/download/:object_name", h.Download)
	rg.GET("/files", h.ListFiles)
	rg.GET("/test-minio", h.TestMinio)
}

// Download streams the object as an attachment from a staged temporary
// file. The staged file is removed after the response is sent, send
// failures included.
func (h *Handler) Download(c *gin.Context) {
	key := c.Param("object_name")

	info, cleanup, err := h.service.Download(c.Request.Context(), key)
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error downloading file: " + err.Error()})
		}
		return
	}
	defer cleanup()

	f, err := os.Open(info.Path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error downloading file: " + err.Error()})
		return
	}
	defer f.Close()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, f, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", info.Filename),
	})
}

func (h *Handler) ListFiles(c *gin.Context) {
	files, err := h.service.ListFiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing files: " + err.Error()})
		return
	}

	out := make([]gin.H, 0, len(files))
	for _, f := range files {
		out = append(out, gin.H{
			"name":          f.Name,
			"display_name":  f.DisplayName,
			"description":   f.Description,
			"size":          f.Size,
			"last_modified": f.LastModified.Format(time.RFC3339),
			"url":           f.URL,
		})
	}

	c.JSON(http.StatusOK, gin.H{"files": out})
}

func (h *Handler) TestMinio(c *gin.Context) {
	if err := h.service.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Error connecting to MinIO server: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Successfully connected to MinIO server",
	})
}
