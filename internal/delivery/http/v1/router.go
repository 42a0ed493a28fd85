package v1

import (
	"context"
	"net/http"
	"time"

	"job-portal-backend/config"
	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC            domain.AuthUsecase
	AdminUC           domain.AdminUsecase
	JobSeekerUC       domain.JobSeekerUsecase
	EmployerProfileUC domain.EmployerProfileUsecase
	JobUC             domain.JobListingUsecase
	ApplicationUC     domain.JobApplicationUsecase
	Tokens            *auth.TokenManager
	Config            *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimit(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
		NewAdminHandler(protected, deps.AdminUC)
		NewJobSeekerHandler(protected, deps.JobSeekerUC)
		NewEmployerProfileHandler(protected, deps.EmployerProfileUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	return r
}

// requestContext copies the authenticated identity from gin's keys into a
// plain context so usecases can read the typed context keys.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if v, ok := c.Get(string(domain.KeyUserID)); ok {
		ctx = context.WithValue(ctx, domain.KeyUserID, v)
	}
	if v, ok := c.Get(string(domain.KeyUserEmail)); ok {
		ctx = context.WithValue(ctx, domain.KeyUserEmail, v)
	}
	if v, ok := c.Get(string(domain.KeyUserRole)); ok {
		ctx = context.WithValue(ctx, domain.KeyUserRole, v)
	}
	return ctx
}
