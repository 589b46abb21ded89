package handlers

import (
	"net/http"
	"time"

	"employee-portal-backend/internal/service"
	"employee-portal-backend/internal/view"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for the presence calendar screen
type CalendarHandler struct {
	screens   *view.Registry
	presences service.PresenceServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(screens *view.Registry, presences service.PresenceServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		screens:   screens,
		presences: presences,
	}
}

// GetCalendar selects a date and lists its presences
// @Summary Presences for a day
// @Description Select a calendar day and list the signed-in employee's presences within it, earliest first. Without a date the active day is reloaded.
// @Tags calendar
// @Produce json
// @Param date query string false "Day to show (YYYY-MM-DD)"
// @Success 200 {object} view.CalendarView "Presences of the day"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 409 {object} map[string]interface{} "Superseded by a newer request"
// @Failure 502 {object} map[string]interface{} "Store request failed"
// @Security BearerAuth
// @Router /api/v1/calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	session, screens, ok := screensFor(c, h.screens)
	if !ok {
		return
	}

	var (
		v   view.CalendarView
		err error
	)
	if raw := c.Query("date"); raw != "" {
		date, parseErr := time.ParseInLocation(view.DateLayout, raw, h.presences.Location())
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		v, err = screens.Calendar.SelectDate(c.Request.Context(), session, date)
	} else {
		v, err = screens.Calendar.Load(c.Request.Context(), session)
	}
	if err != nil {
		respondScreenError(c, err, v)
		return
	}

	c.JSON(http.StatusOK, v)
}
