package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	sysinfo "github.com/elastic/go-sysinfo"
	"github.com/stewardhq/steward/src/calendar"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/monitor"
	"github.com/stewardhq/steward/src/persona"
)

// GetHealth reports liveness plus whether the monitor loop is active.
func GetHealth(recorder *monitor.MotionRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"healthy":    true,
			"monitoring": recorder.IsRunning(),
		})
	}
}

func GetConfig(configuration *models.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"config": configuration.Config,
		})
	}
}

// GetSystemInfo returns host information, handy to verify deployments.
func GetSystemInfo(c *gin.Context) {
	host, err := sysinfo.Host()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.APIResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.APIResponse{Data: host.Info()})
}

func StartMonitor(recorder *monitor.MotionRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		message, err := recorder.Start()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, models.APIResponse{Message: message})
			return
		}
		c.JSON(http.StatusOK, models.APIResponse{Message: message})
	}
}

func StopMonitor(recorder *monitor.MotionRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		message, _ := recorder.Stop()
		c.JSON(http.StatusOK, models.APIResponse{Message: message})
	}
}

func GetMonitorStatus(recorder *monitor.MotionRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "idle"
		if recorder.IsRunning() {
			status = "monitoring"
		}
		c.JSON(http.StatusOK, models.APIResponse{Data: status})
	}
}

func ListCalendarEvents(store *calendar.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
		maxResults, _ := strconv.Atoi(c.DefaultQuery("max_results", "10"))
		events, err := store.UpcomingEvents(days, maxResults)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.APIResponse{Data: events})
	}
}

func CreateCalendarEvent(store *calendar.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.CalendarEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Message: err.Error()})
			return
		}
		created, err := store.CreateEvent(event)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, models.APIResponse{Data: created})
	}
}

func GetCalendarEvent(store *calendar.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := store.GetEvent(c.Param("id"))
		if err != nil {
			if errors.Is(err, calendar.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, models.APIResponse{Message: err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, models.APIResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.APIResponse{Data: event})
	}
}

func UpdateCalendarEvent(store *calendar.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var updates models.CalendarEvent
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Message: err.Error()})
			return
		}
		updated, err := store.UpdateEvent(c.Param("id"), updates)
		if err != nil {
			if errors.Is(err, calendar.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, models.APIResponse{Message: err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, models.APIResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.APIResponse{Data: updated})
	}
}

func DeleteCalendarEvent(store *calendar.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeleteEvent(c.Param("id"))
		if err != nil {
			if errors.Is(err, calendar.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, models.APIResponse{Message: err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, models.APIResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.APIResponse{Data: "deleted"})
	}
}

func GetPersona(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{Data: persona.Get()})
}
