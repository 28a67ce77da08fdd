package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/manusware/context-manager/internal/api/handlers"
	"github.com/manusware/context-manager/internal/store"
)

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(s *store.Store) *gin.Engine {
	r := gin.Default()

	// The web dashboard is served from a different origin.
	r.Use(cors.Default())

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	h := handlers.New(s)

	api := r.Group("/api")
	{
		// Project routes
		api.GET("/projects", h.ListProjects)
		api.POST("/projects", h.CreateProject)
		api.GET("/projects/:id", h.GetProject)
		api.PUT("/projects/:id", h.UpdateProject)
		api.DELETE("/projects/:id", h.DeleteProject)

		// Context routes
		api.GET("/projects/:id/contexts", h.ListContexts)
		api.GET("/projects/:id/contexts/current", h.GetCurrentContext)
		api.POST("/projects/:id/contexts", h.CreateContext)
		api.PUT("/contexts/:id", h.UpdateContext)

		// Task routes
		api.GET("/projects/:id/tasks", h.ListTasks)
		api.POST("/projects/:id/tasks", h.CreateTask)
		api.PUT("/tasks/:id", h.UpdateTask)

		// Git repository routes
		api.GET("/projects/:id/repositories", h.ListRepositories)
		api.POST("/projects/:id/repositories", h.CreateRepository)

		// Context generation
		api.POST("/projects/:id/generate-context", h.GenerateContext)

		// Dashboard
		api.GET("/dashboard/stats", h.GetDashboardStats)
	}

	return r
}
