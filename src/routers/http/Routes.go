package http

import (
	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/src/calendar"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/monitor"
	"github.com/stewardhq/steward/src/routers/websocket"
)

func AddRoutes(r *gin.Engine, authMiddleware *jwt.GinJWTMiddleware, configuration *models.Configuration, communication *models.Communication, recorder *monitor.MotionRecorder, store *calendar.Store) *gin.RouterGroup {
	api := r.Group("/api")
	{
		api.POST("/login", authMiddleware.LoginHandler)
		api.GET("/health", GetHealth(recorder))
		api.GET("/ws", websocket.Handler)

		api.Use(authMiddleware.MiddlewareFunc())
		{
			api.GET("/config", GetConfig(configuration))
			api.GET("/system", GetSystemInfo)

			api.POST("/monitor/start", StartMonitor(recorder))
			api.POST("/monitor/stop", StopMonitor(recorder))
			api.GET("/monitor/status", GetMonitorStatus(recorder))

			api.GET("/calendar/events", ListCalendarEvents(store))
			api.POST("/calendar/events", CreateCalendarEvent(store))
			api.GET("/calendar/events/:id", GetCalendarEvent(store))
			api.PUT("/calendar/events/:id", UpdateCalendarEvent(store))
			api.DELETE("/calendar/events/:id", DeleteCalendarEvent(store))

			api.GET("/persona", GetPersona)
		}
	}
	return api
}
