package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ticketpulse/internal/domain/dto"
	"github.com/guttosm/ticketpulse/internal/domain/models"
	"github.com/guttosm/ticketpulse/internal/logger"
	"github.com/guttosm/ticketpulse/internal/service"
)

const (
	defaultDays     = 30
	defaultTopCount = 5
	maxTopCount     = 100
)

// Handler provides HTTP handlers for the event and sales endpoints.
//
// Responsibilities:
//   - Parse and clamp incoming query parameters
//   - Delegate to the service layer
//   - Translate service results and errors into JSON responses with
//     appropriate HTTP status codes
type Handler struct {
	events  service.EventService
	tickets service.TicketService
}

// NewHandler constructs a Handler from the two service dependencies.
func NewHandler(events service.EventService, tickets service.TicketService) *Handler {
	return &Handler{events: events, tickets: tickets}
}

// clampTopCount applies the fixed top-N policy: values outside 1..100 are
// replaced by the default with a warning, never rejected. Callers rely on
// this soft-fail.
func clampTopCount(count int) int {
	if count <= 0 || count > maxTopCount {
		logger.L().Warn().Int("count", count).Int("default", defaultTopCount).Msg("invalid count parameter, using default")
		return defaultTopCount
	}
	return count
}

// intQuery reads an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.L().Warn().Str(name, raw).Int("default", def).Msg("non-numeric query parameter, using default")
		return def
	}
	return v
}

// GetUpcomingEvents handles GET /api/v1/events.
//
// GetUpcomingEvents godoc
// @Summary      List upcoming events
// @Description  Returns events starting within the given day window (30, 60 or 180 days; other values fall back to 30), ordered by start time
// @Tags         events
// @Produce      json
// @Param        days  query     int  false  "Look-ahead window in days"  example(30)
// @Success      200   {array}   dto.EventResponse      "Success"
// @Failure      500   {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/events [get]
func (h *Handler) GetUpcomingEvents(c *gin.Context) {
	days := intQuery(c, "days", defaultDays)
	if days != 30 && days != 60 && days != 180 {
		logger.L().Warn().Int("days", days).Int("default", defaultDays).Msg("invalid days parameter, using default")
		days = defaultDays
	}

	events, err := h.events.UpcomingEvents(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch upcoming events", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewEventResponses(events))
}

// GetEventByID handles GET /api/v1/events/:id.
//
// GetEventByID godoc
// @Summary      Get event by id
// @Description  Returns a single event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"  example(evt-001)
// @Success      200  {object}  dto.EventResponse      "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse      "Not Found"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/events/{id} [get]
func (h *Handler) GetEventByID(c *gin.Context) {
	id := c.Param("id")

	evt, err := h.events.EventByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, models.ErrEmptyEventID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("event id is required", nil))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch event", err))
		return
	case evt == nil:
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("event not found", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewEventResponse(*evt))
}

// GetTopEventsByCount handles GET /api/v1/sales/top-by-count.
//
// GetTopEventsByCount godoc
// @Summary      Top events by ticket count
// @Description  Returns up to `count` events ranked by number of tickets sold (count outside 1..100 falls back to 5); events without sales are excluded
// @Tags         sales
// @Produce      json
// @Param        count  query     int  false  "Number of events to return"  example(5)
// @Success      200    {array}   dto.TopEventResponse  "Success"
// @Failure      500    {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/sales/top-by-count [get]
func (h *Handler) GetTopEventsByCount(c *gin.Context) {
	count := clampTopCount(intQuery(c, "count", defaultTopCount))

	rows, err := h.tickets.TopEventsByCount(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch top selling events", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewTopEventByCountResponses(rows))
}

// GetTopEventsByRevenue handles GET /api/v1/sales/top-by-revenue.
//
// GetTopEventsByRevenue godoc
// @Summary      Top events by revenue
// @Description  Returns up to `count` events ranked by summed ticket revenue (count outside 1..100 falls back to 5); events without sales are excluded
// @Tags         sales
// @Produce      json
// @Param        count  query     int  false  "Number of events to return"  example(5)
// @Success      200    {array}   dto.TopEventResponse  "Success"
// @Failure      500    {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/sales/top-by-revenue [get]
func (h *Handler) GetTopEventsByRevenue(c *gin.Context) {
	count := clampTopCount(intQuery(c, "count", defaultTopCount))

	rows, err := h.tickets.TopEventsByRevenue(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch top selling events", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewTopEventByRevenueResponses(rows))
}

// GetSalesSummary handles GET /api/v1/sales/summary.
//
// GetSalesSummary godoc
// @Summary      Sales summary
// @Description  Returns both top-N rankings (by ticket count and by revenue) in one payload
// @Tags         sales
// @Produce      json
// @Param        count  query     int  false  "Number of events per ranking"  example(5)
// @Success      200    {object}  dto.SalesSummaryResponse  "Success"
// @Failure      500    {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/sales/summary [get]
func (h *Handler) GetSalesSummary(c *gin.Context) {
	count := clampTopCount(intQuery(c, "count", defaultTopCount))

	byCount, byRevenue, err := h.tickets.SalesSummary(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch sales summary", err))
		return
	}

	c.JSON(http.StatusOK, dto.SalesSummaryResponse{
		TopByCount:   dto.NewTopEventByCountResponses(byCount),
		TopByRevenue: dto.NewTopEventByRevenueResponses(byRevenue),
	})
}

// GetTicketsForEvent handles GET /api/v1/tickets/event/:eventId.
//
// GetTicketsForEvent godoc
// @Summary      List tickets for an event
// @Description  Returns all ticket sales for the event, prices in major currency units, ordered by purchase date
// @Tags         tickets
// @Produce      json
// @Param        eventId  path      string  true  "Event id"  example(evt-001)
// @Success      200      {array}   dto.TicketSaleResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/tickets/event/{eventId} [get]
func (h *Handler) GetTicketsForEvent(c *gin.Context) {
	eventID := c.Param("eventId")

	sales, err := h.tickets.TicketsForEvent(c.Request.Context(), eventID)
	switch {
	case errors.Is(err, models.ErrEmptyEventID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("event id is required", nil))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch tickets", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewTicketSaleResponses(sales))
}
