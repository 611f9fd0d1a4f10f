package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/linkup-api/internal/middleware"
	"github.com/franciscosanchezn/linkup-api/internal/models"
	"github.com/franciscosanchezn/linkup-api/internal/services"
)

// EventController handles HTTP requests related to events
type EventController interface {
	// AddEvent creates a new event
	AddEvent(c *gin.Context)
	// ListEvents retrieves all events
	ListEvents(c *gin.Context)
	// GetEvent retrieves an event by its ID
	GetEvent(c *gin.Context)
	// UpdateEvent updates an existing event
	UpdateEvent(c *gin.Context)
	// DeleteEvent cancels an event by its ID
	DeleteEvent(c *gin.Context)
}

type eventController struct {
	service services.EventService
}

// NewEventController creates a new instance of EventController
func NewEventController(service services.EventService) EventController {
	return &eventController{service: service}
}

func failure(c *gin.Context, status int, message string, err error) {
	body := models.ResultResponse{Success: false, Message: message}
	if err != nil {
		_ = c.Error(err)
		body.Error = err.Error()
	}
	c.JSON(status, body)
}

// AddEvent godoc
// @Summary Add an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.Event true "Event"
// @Success 201 {object} models.ResultResponse
// @Failure 400 {object} models.ResultResponse
// @Failure 500 {object} models.ResultResponse
// @Router /add-event [post]
func (ec *eventController) AddEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if event.OrganizerEmail == "" {
		if identity, ok := middleware.CurrentIdentity(c); ok {
			event.OrganizerEmail = identity.Email()
		}
	}

	created, err := ec.service.CreateEvent(c.Request.Context(), event)
	if err != nil {
		failure(c, http.StatusInternalServerError, "Failed to add event.", err)
		return
	}

	c.JSON(http.StatusCreated, models.ResultResponse{
		Success: true,
		Message: "Event added successfully!",
		Result:  created,
	})
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Failure 500 {object} models.ResultResponse
// @Router /events [get]
func (ec *eventController) ListEvents(c *gin.Context) {
	events, err := ec.service.ListEvents(c.Request.Context())
	if err != nil {
		failure(c, http.StatusInternalServerError, "Failed to fetch events.", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} models.ResultResponse
// @Router /events/{id} [get]
func (ec *eventController) GetEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := ec.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			failure(c, http.StatusNotFound, "Event not found", nil)
			return
		}
		failure(c, http.StatusInternalServerError, "Failed to fetch event.", err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Applies the non-empty fields of the body. Answers 404 when the event does not exist or nothing changed.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body models.Event true "Fields to change"
// @Success 200 {object} models.ResultResponse
// @Failure 404 {object} models.ResultResponse
// @Failure 500 {object} models.ResultResponse
// @Router /events/{id} [put]
func (ec *eventController) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.Event
	if err := c.ShouldBindJSON(&patch); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := ec.service.UpdateEvent(c.Request.Context(), id, patch); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			failure(c, http.StatusNotFound, "Event not found or not updated", nil)
			return
		}
		failure(c, http.StatusInternalServerError, "Failed to update event", err)
		return
	}

	c.JSON(http.StatusOK, models.ResultResponse{Success: true, Message: "Event updated successfully"})
}

// DeleteEvent godoc
// @Summary Cancel an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.ResultResponse
// @Failure 403 {object} models.MessageResponse
// @Failure 404 {object} models.ResultResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (ec *eventController) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ec.service.DeleteEvent(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			failure(c, http.StatusNotFound, "Event not found or already deleted", nil)
			return
		}
		failure(c, http.StatusInternalServerError, "Failed to cancel event", err)
		return
	}

	c.JSON(http.StatusOK, models.ResultResponse{Success: true, Message: "Event canceled successfully"})
}
