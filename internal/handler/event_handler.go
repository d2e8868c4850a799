package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"charity-events/internal/dto"
	"charity-events/internal/repository"
	"charity-events/internal/service"
	"charity-events/pkg/monitoring"

	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/events/upcoming", h.ListUpcoming)
	g.GET("/events/search", h.SearchEvents)
	g.GET("/events/:id", h.GetEvent)
}

func (h *EventHandler) ListUpcoming(c echo.Context) error {
	events, err := h.svc.ListUpcoming(c.Request().Context())
	if err != nil {
		log.Printf("upcoming events: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error: Failed to load upcoming events")
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventResponse(&events[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) SearchEvents(c echo.Context) error {
	var req dto.SearchEventsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	filter := repository.EventFilter{
		Date:     req.Date,
		Location: req.Location,
	}
	// A malformed categoryId is ignored rather than rejected; all filters
	// are optional and loosely validated.
	if id, err := strconv.ParseUint(req.CategoryID, 10, 32); err == nil {
		filter.CategoryID = uint(id)
	}

	events, err := h.svc.Search(c.Request().Context(), filter)
	if err != nil {
		log.Printf("search events: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error: Failed to search events")
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventResponse(&events[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	// A non-numeric id cannot match any event, so it is a miss, not a
	// malformed request.
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		monitoring.RecordEventLookup("miss")
		return echo.NewHTTPError(http.StatusNotFound, "Event not found or suspended")
	}

	event, err := h.svc.GetEvent(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			monitoring.RecordEventLookup("miss")
			return echo.NewHTTPError(http.StatusNotFound, "Event not found or suspended")
		}
		monitoring.RecordEventLookup("error")
		log.Printf("event detail: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error: Failed to load event details")
	}

	monitoring.RecordEventLookup("hit")
	return c.JSON(http.StatusOK, dto.ToEventDetailResponse(event))
}
