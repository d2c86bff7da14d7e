package router

import (
	"clientCompass/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/me", handler.Me, authRequired)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.POST("/similar-clients", handler.SimilarClients)
}

func SetupAnalyticsRoutes(api *echo.Group, handler *rest.AnalyticsHandler, authRequired echo.MiddlewareFunc) {
	analytics := api.Group("/analytics", authRequired)

	analytics.GET("/kpis", handler.KPIs)
	analytics.GET("/monthly-gross-amount", handler.MonthlyAmounts)
	analytics.GET("/attendance-by-country", handler.AttendanceByCountry)
	analytics.GET("/event-durations", handler.EventDurations)
}

func SetupActionRoutes(api *echo.Group, handler *rest.ActionHandler, authRequired echo.MiddlewareFunc) {
	actions := api.Group("/actions", authRequired)

	actions.GET("/:id/invitees", handler.Invitees)
}

func SetupDatasetRoutes(api *echo.Group, handler *rest.DatasetHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	datasets := api.Group("/datasets")

	datasets.POST("/upload", handler.Upload, authRequired, adminOnly)
	datasets.POST("/reload", handler.Reload, authRequired, adminOnly)
}
