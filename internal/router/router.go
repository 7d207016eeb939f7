package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hirewire/employment-api/internal/handlers"
	"github.com/hirewire/employment-api/internal/middleware"
	"github.com/hirewire/employment-api/internal/services"
	"github.com/hirewire/employment-api/internal/store"
)

// New assembles the main CRUD API engine. Middleware order matters: query
// validation runs before the bearer gate, and both run before any handler —
// a rejected request never touches the datastore. Requests no custom route
// claims fall through to the generic CRUD layer via NoRoute.
func New(st *store.Store) *gin.Engine {
	adminService := services.NewAdminService(st)
	candidateService := services.NewCandidateService(st)
	jobService := services.NewJobService(st)
	employmentService := services.NewEmploymentService(st)

	adminHandler := handlers.NewAdminHandler(adminService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	jobHandler := handlers.NewJobHandler(jobService)
	employmentHandler := handlers.NewEmploymentHandler(employmentService)
	genericHandler := handlers.NewGenericHandler(st)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "x-api-key"}
	r.Use(cors.New(config))

	r.Use(middleware.RequestID())
	r.Use(middleware.ValidateRoleQuery())
	r.Use(middleware.ValidateDomainQuery())
	r.Use(middleware.RequireAdminToken(adminService))

	r.GET("/health", handlers.HealthCheck)
	r.POST("/api-admin", adminHandler.Register)

	r.GET("/candidates", candidateHandler.List)
	r.POST("/candidates", candidateHandler.Create)
	r.GET("/candidates/:candidateId", candidateHandler.Get)
	r.PATCH("/candidates/:candidateId", candidateHandler.Update)
	r.PUT("/candidates/:candidateId", candidateHandler.Update)
	r.DELETE("/candidates/:candidateId", candidateHandler.Delete)

	r.GET("/jobs", jobHandler.List)
	r.POST("/jobs", jobHandler.Create)
	r.GET("/jobs/:jobId", jobHandler.Get)
	r.PATCH("/jobs/:jobId", jobHandler.Update)
	r.PUT("/jobs/:jobId", jobHandler.Update)
	r.DELETE("/jobs/:jobId", jobHandler.Delete)

	r.GET("/employments", employmentHandler.List)
	r.GET("/employments/:employmentId", employmentHandler.Get)
	r.PATCH("/employments/:employmentId", employmentHandler.Update)
	r.PUT("/employments/:employmentId", employmentHandler.Update)
	r.DELETE("/employments/:employmentId", employmentHandler.Delete)

	r.NoRoute(genericHandler.Handle)

	return r
}

// NewDemo assembles the second listener: a public route and one gated by the
// static API key. Deliberately separate from the main engine so the two auth
// mechanisms never share a pipeline.
func NewDemo(apiKey string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/public", handlers.PublicData)
	r.GET("/secure-data", middleware.RequireAPIKey(apiKey), handlers.SecureData)

	return r
}
