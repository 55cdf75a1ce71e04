package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/techcarewavehealth-wq/carewaveerp/cmd/docs"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/middleware"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/platform/config"
)

// APIBasePath is the prefix of every authenticated route.
const APIBasePath = "/api/v1/accounting"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// A nil mutationLimiter disables rate limiting on writes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	mutationLimiter *limiter.Limiter,
) {
	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services, mutationLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	mutationLimiter *limiter.Limiter,
) {
	v1 := r.Group(APIBasePath, middleware.AuthMiddleware(cfg.JWTSecret))

	mutate := func(c *gin.Context) { c.Next() }
	if mutationLimiter != nil {
		mutate = middleware.RateLimit(mutationLimiter)
	}

	registerAccountRoutes(v1, mutate, service.Account, service.Statement)
	registerJournalRoutes(v1, mutate, service.Journal)
	registerReportingRoutes(v1, service.Statement, service.Liquidity)
	registerBudgetRoutes(v1, mutate, service.Budget)
	registerInvestorRoutes(v1, mutate, service.Equity)
	registerKPIRoutes(v1, mutate, service.KPI)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = APIBasePath
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
