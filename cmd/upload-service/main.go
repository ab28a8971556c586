package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"est/internal/config"
	"est/internal/database"
	"est/internal/identity"
	"est/internal/middleware"
	"est/internal/modules/uploads"
	"est/internal/repository"
	"est/internal/storage"
)

func main() {
	cfg := config.Load()

	session, err := database.Connect(cfg.Cassandra)
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	if err := database.EnsureCourseTables(session); err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewMinioStore(cfg.Minio)
	if err != nil {
		log.Fatal(err)
	}

	courseRepo := repository.NewCourseRepository(session)

	// Uploads attribute ownership from the token payload alone; the user
	// directory is not consulted on this path.
	service := uploads.NewService(store, courseRepo, identity.LocalResolver{})
	handler := uploads.NewHandler(service)

	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Upload service is running"})
		})
		handler.RegisterRoutes(api)
	}

	if err := r.Run(":" + config.Port("5001")); err != nil {
		log.Fatal(err)
	}
}
