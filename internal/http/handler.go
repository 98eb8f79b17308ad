package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/projsite/bookings-service/internal/service"
)

type Handler struct {
	bookings *service.BookingService
	log      zerolog.Logger
}

func NewHandler(bookings *service.BookingService, log zerolog.Logger) *Handler {
	return &Handler{bookings: bookings, log: log}
}

func (h *Handler) Register(router gin.IRoutes) {
	router.GET("/api/bookings", h.getBookings)
	router.GET("/api/bookings/export", h.exportBookings)
	router.GET("/api/bookings/:bookingType/:id", h.getBookingByID)
}

func (h *Handler) getBookings(c *gin.Context) {
	input, err := parseBookingsQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	rows, err := h.bookings.GetBookings(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

func (h *Handler) exportBookings(c *gin.Context) {
	input, err := parseBookingsQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.bookings.ExportBookings(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) getBookingByID(c *gin.Context) {
	record, err := h.bookings.GetBookingByID(c.Request.Context(), c.Param("bookingType"), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("bookings request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}

func parseBookingsQuery(c *gin.Context) (service.GetBookingsInput, error) {
	input := service.GetBookingsInput{
		ProjectID:     strings.TrimSpace(c.Query("project_id")),
		Zones:         parseIDList(c.Query("zones")),
		SubProjects:   parseIDList(c.Query("subProjects")),
		Contractors:   parseIDList(c.Query("contractors")),
		Resources:     parseIDList(c.Query("resources")),
		RequestStatus: strings.TrimSpace(c.Query("requestStatus")),
		IsConfirmed:   c.Query("isConfirmed") != "false",
		BookingType:   strings.TrimSpace(c.Query("bookingType")),
	}

	if raw := c.Query("startDate"); raw != "" {
		start, err := parseDate(raw)
		if err != nil {
			return input, errors.New("invalid startDate")
		}
		input.StartDate = start
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err := parseDate(raw)
		if err != nil {
			return input, errors.New("invalid endDate")
		}
		input.EndDate = end
	}
	return input, nil
}

func parseIDList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
