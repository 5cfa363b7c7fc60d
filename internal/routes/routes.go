package routes

import (
	"net/http"

	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
		appHandlers.SavedJobHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
	}

	ginRouter.NoRoute(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.New(apperrors.CodeNotFound, "route", "Route not found", http.StatusNotFound))
	})

	logger.Debug("HTTP routes registered", "count", len(ginRouter.Routes()))
}
