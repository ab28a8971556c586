package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"est/internal/config"
	"est/internal/database"
	"est/internal/middleware"
	"est/internal/modules/users"
	"est/internal/repository"
)

func main() {
	cfg := config.Load()

	session, err := database.Connect(cfg.Cassandra)
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	if err := database.EnsureUserTable(session); err != nil {
		log.Fatal(err)
	}

	handler := users.NewHandler(users.NewService(repository.NewUserRepository(session)))

	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "User service is running"})
		})
		handler.RegisterRoutes(api)
	}

	if err := r.Run(":" + config.Port("5003")); err != nil {
		log.Fatal(err)
	}
}
