package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"xscheduler/services/calendar"
	"xscheduler/utils"
)

var CalendarSvc calendar.CalendarService

// SetCalendarService wires the calendar service used by these handlers.
func SetCalendarService(svc calendar.CalendarService) {
	CalendarSvc = svc
}

// providerFilter parses the optional comma-separated providerIds query.
func providerFilter(c *gin.Context) []string {
	raw := c.Query("providerIds")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

// GetDayView returns the laid-out day calendar.
func GetDayView(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "date is required")
		return
	}

	layout, err := CalendarSvc.DayView(date, providerFilter(c))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to build day view", err.Error())
		return
	}
	c.JSON(http.StatusOK, layout)
}

// GetWeekView returns the laid-out week containing the given date.
func GetWeekView(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "date is required")
		return
	}

	days, err := CalendarSvc.WeekView(date, providerFilter(c))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to build week view", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetMonthView returns the 6x7 month grid.
func GetMonthView(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid year parameter", c.Query("year"))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid month parameter", c.Query("month"))
		return
	}

	view, err := CalendarSvc.MonthView(year, month, providerFilter(c))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to build month view", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}
