package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"est/internal/config"
	"est/internal/database"
	"est/internal/identity"
	"est/internal/middleware"
	"est/internal/modules/courses"
	"est/internal/modules/enrollments"
	"est/internal/repository"
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

	courseRepo := repository.NewCourseRepository(session)
	enrollmentRepo := repository.NewEnrollmentRepository(session)

	resolver := identity.NewDirectoryResolver(cfg.Services.UserServiceURL, identity.LocalResolver{})

	courseHandler := courses.NewHandler(courses.NewService(courseRepo))
	enrollmentHandler := enrollments.NewHandler(enrollments.NewService(enrollmentRepo, courseRepo))

	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Course service is running"})
		})

		protected := api.Group("/")
		protected.Use(middleware.RequireIdentity(resolver))
		{
			courseHandler.RegisterRoutes(protected)
			enrollmentHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + config.Port("5004")); err != nil {
		log.Fatal(err)
	}
}
