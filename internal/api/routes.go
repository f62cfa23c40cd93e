package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vaani_web/internal/api/handlers"
	"vaani_web/internal/corpus"
	"vaani_web/internal/middleware"
	"vaani_web/internal/service"
	"vaani_web/internal/session"
)

func SetupRoutes(r *gin.Engine, services *service.Services, sessions *session.Manager, prompts *corpus.Provider) {
	authHandler := handlers.NewAuthHandler(services.User, sessions)
	pageHandler := handlers.NewPageHandler(prompts, sessions)
	uploadHandler := handlers.NewUploadHandler(services.Recording, sessions)

	// Public routes
	r.GET("/", pageHandler.Welcome)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Routes requiring an authenticated session
	authorized := r.Group("/")
	authorized.Use(middleware.RequireAuth(sessions))
	{
		authorized.GET("/index", pageHandler.Index)
		authorized.POST("/upload", uploadHandler.Upload)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})
}
