package uploads

import (
	"net/http"
	"strings"
	"time"

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
	rg.POST("/upload", h.Upload)
	rg.GET("/files", h.ListFiles)
	rg.GET("/test-minio", h.TestMinio)
}

// Upload accepts a multipart file with optional custom_filename and
// description fields. Anonymous uploads are allowed; the token, when
// present, only attributes the course to its owner.
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part in the request"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}

	token, _ := middleware.BearerToken(c)

	input := PublishInput{
		Data:        file,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		CustomName:  strings.TrimSpace(c.PostForm("custom_filename")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Token:       token,
	}

	result, err := h.service.Publish(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading file: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":                  "File uploaded successfully to MinIO",
		"file_name":                result.FileName,
		"display_name":             result.DisplayName,
		"description":              result.Description,
		"object_name":              result.ObjectName,
		"url":                      result.URL,
		"size":                     result.Size,
		"course_id":                result.CourseID,
		"cassandra_record_created": result.RecordCreated,
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
