package gateway

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the gateway routes. Every route is also served under /api
// for hosts that mount the API there.
func NewRouter(handler *Handler, stream *StreamHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(structuredLoggingMiddleware())

	registerRoutes(&router.RouterGroup, handler, stream)
	registerRoutes(router.Group("/api"), handler, stream)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func registerRoutes(group *gin.RouterGroup, handler *Handler, stream *StreamHandler) {
	group.GET("/", handler.Root)
	group.GET("/health", handler.Health)

	group.POST("/analyze", handler.Analyze)
	group.GET("/ws/analyze", stream.StreamAnalysis)

	group.GET("/configs", handler.ListConfigurations)
	group.POST("/configs", handler.CreateConfiguration)
	group.GET("/configs/:id", handler.GetConfiguration)
	group.DELETE("/configs/:id", handler.DeleteConfiguration)
}
