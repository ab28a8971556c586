package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"est/internal/config"
	"est/internal/middleware"
	"est/internal/modules/downloads"
	"est/internal/storage"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewMinioStore(cfg.Minio)
	if err != nil {
		log.Fatal(err)
	}

	handler := downloads.NewHandler(downloads.NewService(store))

	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Download service is running"})
		})
		handler.RegisterRoutes(api)
	}

	if err := r.Run(":" + config.Port("5002")); err != nil {
		log.Fatal(err)
	}
}
