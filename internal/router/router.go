package router

import (
	"github.com/gin-gonic/gin"

	"orderscope/internal/handler"
	"orderscope/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	importH *handler.ImportHandler,
	orderH *handler.OrderHandler,
	directoryH *handler.DirectoryHandler,
	companyH *handler.CompanyHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Import pipeline
	imports := v1.Group("/imports")
	imports.POST("", importH.Upload)
	imports.GET("", importH.ListRuns)

	// Reconciled data (read-only)
	orders := v1.Group("/orders")
	orders.GET("", orderH.List)
	orders.GET("/:id", orderH.GetByID)

	v1.GET("/customers", directoryH.ListCustomers)
	v1.GET("/products", directoryH.ListProducts)

	// Enrichment pass-through
	v1.GET("/companies/lookup", companyH.Lookup)

	return r
}
