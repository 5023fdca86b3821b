package event

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	EventService *EventService
}

func (ec *EventController) AddEvent(c *gin.Context) {
	var req struct {
		Title   string `form:"title" binding:"required"`
		Start   string `form:"start" binding:"required"`
		End     string `form:"end"`
		Details string `form:"details"`
		Color   string `form:"color"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An empty end date means a single-day event, stored as NULL.
	var end *string
	if req.End != "" {
		end = &req.End
	}

	e, err := ec.EventService.AddEvent(Event{
		Title:   req.Title,
		Start:   req.Start,
		End:     end,
		Details: req.Details,
		Color:   req.Color,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event added successfully!",
		"event":   e,
	})
}

func (ec *EventController) GetCalendarEvents(c *gin.Context) {
	events, err := ec.EventService.ListEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}
