package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"recipe-scheduler/internal/handler/api"
	"recipe-scheduler/internal/handler/middleware"
	"recipe-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Schedule *api.ScheduleHandler
	Device   *api.DeviceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		schedules := apiGroup.Group("/schedules")
		addRoutes(schedules, []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.Schedule.Create},
			{Method: http.MethodGet, Path: "", Handler: handlers.Schedule.List},
			{Method: http.MethodGet, Path: "/preview", Handler: handlers.Schedule.Preview},
			{Method: http.MethodGet, Path: "/:id", Handler: handlers.Schedule.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: handlers.Schedule.Reschedule},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: handlers.Schedule.Complete},
			{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Schedule.Delete},
		})

		devices := apiGroup.Group("/devices")
		addRoutes(devices, []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.Device.Register},
			{Method: http.MethodDelete, Path: "/:token", Handler: handlers.Device.Unregister},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
