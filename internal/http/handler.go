package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/solar-api/internal/domain"
	"go.ngs.io/solar-api/internal/usecase"
)

// Handler handles HTTP requests for solar event times.
type Handler struct {
	sunUC *usecase.SunTimesUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(sunUC *usecase.SunTimesUseCase) *Handler {
	return &Handler{
		sunUC: sunUC,
	}
}

// GetSunTimes handles GET /v1/sun/times.
func (h *Handler) GetSunTimes(c *gin.Context) {
	// Parse query parameters.
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	place := c.Query("place")
	dateStr := c.Query("date")
	daysStr := c.Query("days")

	// Build request.
	req := usecase.SunTimesRequest{
		Days: 1,
	}

	// Parse lat/lon.
	if latStr != "" && lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
			return
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid longitude: %v", err)})
			return
		}
		req.Lat = &lat
		req.Lon = &lon
	}

	// Parse place name.
	if place != "" {
		req.Place = &place
	}

	// Parse date.
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid date (expected YYYY-MM-DD): %v", err)})
		return
	}
	req.Date = date.UTC()

	// Parse day count (default: 1).
	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid days: %v", err)})
			return
		}
		req.Days = days
	}

	// Execute use case.
	response, err := h.sunUC.Execute(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSunPosition handles GET /v1/sun/position.
func (h *Handler) GetSunPosition(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid longitude: %v", err)})
		return
	}
	if lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude must be between -90 and 90"})
		return
	}
	if lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude must be between -180 and 180"})
		return
	}

	// Instant defaults to now.
	at := time.Now().UTC()
	if timeStr := c.Query("time"); timeStr != "" {
		at, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid time (expected RFC3339): %v", err)})
			return
		}
		at = at.UTC()
	}

	pos := domain.ComputeSunPosition(lat, lon, at)

	c.JSON(http.StatusOK, gin.H{
		"time":            at.Format(time.RFC3339),
		"latitude":        lat,
		"longitude":       lon,
		"declination_deg": pos.DeclinationDeg,
		"eq_of_time_min":  pos.EqOfTimeMin,
		"hour_angle_deg":  pos.HourAngleDeg,
		"elevation_deg":   pos.ElevationDeg,
		"azimuth_deg":     pos.AzimuthDeg,
	})
}

// EventClassResponse is the response for listing event classes.
type EventClassResponse struct {
	Name         string   `json:"name"`
	ElevationDeg *float64 `json:"elevation_deg,omitempty"`
	Side         string   `json:"side"`
	Description  string   `json:"description,omitempty"`
}

// GetEventClasses returns the catalog of solar event classes.
func (h *Handler) GetEventClasses(c *gin.Context) {
	descriptions := map[string]string{
		"astro_dawn": "Astronomical twilight begins",
		"naut_dawn":  "Nautical twilight begins",
		"civil_dawn": "Civil twilight begins",
		"sunrise":    "Upper limb of the sun reaches the horizon",
		"noon":       "Sun crosses the local meridian",
		"sunset":     "Upper limb of the sun leaves the horizon",
		"civil_dusk": "Civil twilight ends",
		"naut_dusk":  "Nautical twilight ends",
		"astro_dusk": "Astronomical twilight ends",
		"midnight":   "Solar midnight, 12 hours after solar noon",
	}

	events := domain.AllEvents()
	response := make([]EventClassResponse, 0, len(events))
	for _, ev := range events {
		entry := EventClassResponse{
			Name:        ev.String(),
			Side:        "meridian",
			Description: descriptions[ev.String()],
		}
		if elev, dusk, ok := ev.Target(); ok {
			e := elev
			entry.ElevationDeg = &e
			if dusk {
				entry.Side = "dusk"
			} else {
				entry.Side = "dawn"
			}
		}
		response = append(response, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"events": response,
		"count":  len(response),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
