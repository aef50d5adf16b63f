/**
* Name:         dashboard_handler.go
* Description:  HTTP handlers for the dashboard page
* Workflow:     page, options, one update cycle per request, health check
 */
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"NobelDashboard/internal/dashboard"
	"NobelDashboard/internal/models"
	"NobelDashboard/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Runner runs one dashboard cycle. *dashboard.Controller satisfies it.
type Runner interface {
	Run(ctx context.Context, in dashboard.Input) (dashboard.Output, error)
	Ping(ctx context.Context) error
}

type DashboardHandler struct {
	runner Runner

	// Per-connection message budget for /ws/dashboard.
	socketLimit rate.Limit
	socketBurst int
}

func NewDashboardHandler(runner Runner) *DashboardHandler {
	return &DashboardHandler{runner: runner, socketLimit: rate.Inf}
}

// WithSocketRateLimit caps how many cycle messages one WebSocket connection
// may send, mirroring the HTTP limiter's rate and burst.
func (h *DashboardHandler) WithSocketRateLimit(perSecond float64, burst int) *DashboardHandler {
	h.socketLimit = rate.Limit(perSecond)
	h.socketBurst = burst
	return h
}

type ErrorResponse struct {
	Error string `json:"error" example:"record store unavailable"`
}

type OptionsResponse struct {
	YearMin    int               `json:"yearMin" example:"1900"`
	YearMax    int               `json:"yearMax" example:"2025"`
	Categories []models.Category `json:"categories"`
	Genders    []models.Category `json:"genders"`
}

// newInput returns an Input whose selection defaults to the full year range
// when the client leaves it out.
func newInput() dashboard.Input {
	return dashboard.Input{Selection: dashboard.DefaultSelection()}
}

// Page godoc
// @Summary      Dashboard page
// @Description  Returns the single-page dashboard (filters, charts and data form).
// @Tags         Dashboard
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       / [get]
func (h *DashboardHandler) Page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// Options godoc
// @Summary      Control options
// @Description  Year bounds and the fixed category and gender choices used by the page controls.
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} handler.OptionsResponse
// @Router       /api/options [get]
func (h *DashboardHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, OptionsResponse{
		YearMin:    models.MinYear,
		YearMax:    models.MaxYear,
		Categories: models.Categories(),
		Genders:    models.Genders(),
	})
}

// Update godoc
// @Summary      Run one dashboard cycle
// @Description  Applies add/edit/delete for every positive click counter (in that order),
// @Description  re-reads all records, filters them by the selection and returns both charts.
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Param        request body dashboard.Input true "click counters, form fields and selection"
// @Success      200 {object} dashboard.Output
// @Failure      400 {object} handler.ErrorResponse "malformed body"
// @Failure      429 {object} handler.ErrorResponse "rate limited"
// @Failure      500 {object} handler.ErrorResponse "store write failed"
// @Failure      503 {object} handler.ErrorResponse "store unavailable"
// @Router       /api/dashboard [post]
func (h *DashboardHandler) Update(c *gin.Context) {
	in := newInput()
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	out, err := h.runner.Run(c.Request.Context(), in)
	if err != nil {
		log.Printf("[ERROR] DashboardHandler.Update(): %v", err)
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Health godoc
// @Summary      Health check
// @Description  Pings the record store.
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} handler.ErrorResponse
// @Router       /healthz [get]
func (h *DashboardHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.runner.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusFor(err error) int {
	if errors.Is(err, storage.ErrStoreUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
