package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashtrack/internal/analytics"
	"dashtrack/internal/service"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
}

func (h *AnalyticsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/analytics")
	g.GET("/overview", h.overview)
	g.GET("/daily", h.daily)
	g.GET("/hourly", h.hourly)
	g.GET("/trends", h.trends)
	g.GET("/performance", h.performance)
}

// @Summary All-time overview aggregates
// @Tags analytics
// @Produce json
// @Success 200 {object} apiResponse
// @Router /api/analytics/overview [get]
func (h *AnalyticsHandler) overview(c *gin.Context) {
	overview, err := h.Service.Overview(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, overview, nil)
}

// @Summary Per-day rollup for a date range
// @Tags analytics
// @Produce json
// @Param start_date query string true "range start (YYYY-MM-DD)"
// @Param end_date query string true "range end (YYYY-MM-DD)"
// @Success 200 {object} apiResponse
// @Router /api/analytics/daily [get]
func (h *AnalyticsHandler) daily(c *gin.Context) {
	stats, err := h.Service.DailyStats(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, stats, map[string]any{"count": len(stats)})
}

// @Summary Hour-of-day buckets for one date, or all-time when date is omitted
// @Tags analytics
// @Produce json
// @Param date query string false "date (YYYY-MM-DD); empty means all-time"
// @Success 200 {object} apiResponse
// @Router /api/analytics/hourly [get]
func (h *AnalyticsHandler) hourly(c *gin.Context) {
	stats, err := h.Service.HourlyStats(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, stats, nil)
}

// @Summary Metric trend series with trailing moving average
// @Tags analytics
// @Produce json
// @Param start_date query string true "range start (YYYY-MM-DD)"
// @Param end_date query string true "range end (YYYY-MM-DD)"
// @Param metric query string false "pay_per_hour|pay_per_mile|total_pay|total_orders|avg_pay_per_order"
// @Success 200 {object} apiResponse
// @Router /api/analytics/trends [get]
func (h *AnalyticsHandler) trends(c *gin.Context) {
	series, err := h.Service.TrendSeries(c.Request.Context(),
		c.Query("start_date"), c.Query("end_date"), c.Query("metric"))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, series, nil)
}

// @Summary Best/worst day, totals and scores for a date range
// @Tags analytics
// @Produce json
// @Param start_date query string true "range start (YYYY-MM-DD)"
// @Param end_date query string true "range end (YYYY-MM-DD)"
// @Success 200 {object} apiResponse
// @Router /api/analytics/performance [get]
func (h *AnalyticsHandler) performance(c *gin.Context) {
	summary, err := h.Service.PerformanceSummary(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, summary, nil)
}

// fail maps parameter validation errors to 400 and everything else (store
// failures) to 502.
func (h *AnalyticsHandler) fail(c *gin.Context, err error) {
	if isValidationErr(err) {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Error(c, http.StatusBadGateway, err.Error(), nil)
}

func isValidationErr(err error) bool {
	return errors.Is(err, analytics.ErrMissingParameter) ||
		errors.Is(err, analytics.ErrInvalidDate) ||
		errors.Is(err, analytics.ErrInvalidRange) ||
		errors.Is(err, analytics.ErrInvalidMetric)
}
