package event

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, eventService *EventService) {
	eventController := &EventController{EventService: eventService}

	r.GET("/calendar", eventController.GetCalendarEvents)
	r.GET("/get_calendar_events", eventController.GetCalendarEvents)
	r.POST("/add_event", eventController.AddEvent)
}
