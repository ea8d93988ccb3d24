package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"dashtrack/internal/analytics"
	"dashtrack/internal/models"
	"dashtrack/internal/repository"
)

const clockLayout = "15:04"

type OrderHandler struct {
	Repo repository.Repository

	// MaxListLimit caps the list page size; MaxBulkSize caps one bulk insert.
	MaxListLimit int
	MaxBulkSize  int
}

func (h *OrderHandler) Register(r *gin.Engine) {
	g := r.Group("/api/orders")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.POST("/bulk", h.createBulk)
	g.POST("/import", h.importCSV)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.DELETE("", h.clear)

	// Static export path lives outside the group so it cannot collide with
	// the :id wildcard.
	r.GET("/api/export/orders", h.exportCSV)
}

type orderRequest struct {
	Date            string  `json:"date" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	EndTime         string  `json:"end_time" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Pay             float64 `json:"pay"`
	Miles           float64 `json:"miles"`
	Tip             float64 `json:"tip"`
	BasePay         float64 `json:"base_pay"`
	PeakPay         float64 `json:"peak_pay"`
	Notes           string  `json:"notes"`
}

func (r *orderRequest) validate() error {
	if err := analytics.ValidateDate(r.Date); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if _, err := time.Parse(clockLayout, r.StartTime); err != nil {
		return fmt.Errorf("start_time must be HH:MM: %q", r.StartTime)
	}
	if _, err := time.Parse(clockLayout, r.EndTime); err != nil {
		return fmt.Errorf("end_time must be HH:MM: %q", r.EndTime)
	}
	if r.DurationMinutes < 1 || r.DurationMinutes > 1440 {
		return fmt.Errorf("duration_minutes must be in [1, 1440], got %d", r.DurationMinutes)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"pay", r.Pay},
		{"miles", r.Miles},
		{"tip", r.Tip},
		{"base_pay", r.BasePay},
		{"peak_pay", r.PeakPay},
	} {
		if f.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", f.name, f.value)
		}
	}
	return nil
}

func (r *orderRequest) toModel() *models.Order {
	return &models.Order{
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		Pay:             decimal.NewFromFloat(r.Pay),
		Miles:           r.Miles,
		Tip:             decimal.NewFromFloat(r.Tip),
		BasePay:         decimal.NewFromFloat(r.BasePay),
		PeakPay:         decimal.NewFromFloat(r.PeakPay),
		Notes:           r.Notes,
	}
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Param limit query int false "page size (default 50)"
// @Param offset query int false "page offset"
// @Param start_date query string false "filter: date >= start_date"
// @Param end_date query string false "filter: date <= end_date"
// @Param min_pay query number false "filter: pay >= min_pay"
// @Param max_pay query number false "filter: pay <= max_pay"
// @Success 200 {object} apiResponse
// @Router /api/orders [get]
func (h *OrderHandler) list(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	if h.MaxListLimit > 0 && limit > h.MaxListLimit {
		Error(c, http.StatusBadRequest, fmt.Sprintf("limit cannot exceed %d", h.MaxListLimit), nil)
		return
	}
	// Normalize here so the meta reports the page size actually applied.
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	params := repository.ListOrdersParams{
		Limit:     limit,
		Offset:    offset,
		StartDate: strQueryPtr(c, "start_date"),
		EndDate:   strQueryPtr(c, "end_date"),
		MinPay:    float64QueryPtr(c, "min_pay"),
		MaxPay:    float64QueryPtr(c, "max_pay"),
	}
	orders, err := h.Repo.ListOrders(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountOrders(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, orders, paginationMeta(limit, offset, total))
}

// @Summary Get one order
// @Tags orders
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} apiResponse
// @Router /api/orders/{id} [get]
func (h *OrderHandler) get(c *gin.Context) {
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid order id", nil)
		return
	}
	order, err := h.Repo.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if order == nil {
		Error(c, http.StatusNotFound, "order not found", nil)
		return
	}
	Ok(c, order, nil)
}

// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body orderRequest true "order"
// @Success 201 {object} apiResponse
// @Router /api/orders [post]
func (h *OrderHandler) create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := req.validate(); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	order := req.toModel()
	if err := h.Repo.InsertOrder(c.Request.Context(), order); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Created(c, order, nil)
}

// @Summary Create orders in bulk
// @Tags orders
// @Accept json
// @Produce json
// @Param orders body []orderRequest true "orders"
// @Success 201 {object} apiResponse
// @Router /api/orders/bulk [post]
func (h *OrderHandler) createBulk(c *gin.Context) {
	var reqs []orderRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if len(reqs) == 0 {
		Error(c, http.StatusBadRequest, "orders array must not be empty", nil)
		return
	}
	if h.MaxBulkSize > 0 && len(reqs) > h.MaxBulkSize {
		Error(c, http.StatusBadRequest, fmt.Sprintf("bulk insert cannot exceed %d orders", h.MaxBulkSize), nil)
		return
	}
	items := make([]*models.Order, 0, len(reqs))
	for i := range reqs {
		if err := reqs[i].validate(); err != nil {
			Error(c, http.StatusBadRequest, fmt.Sprintf("orders[%d]: %s", i, err.Error()), nil)
			return
		}
		items = append(items, reqs[i].toModel())
	}
	// Single transaction: either every order lands or none do.
	if err := h.Repo.InsertOrdersBulk(c.Request.Context(), items); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Created(c, items, map[string]any{"inserted": len(items)})
}

// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param order body orderRequest true "order"
// @Success 200 {object} apiResponse
// @Router /api/orders/{id} [put]
func (h *OrderHandler) update(c *gin.Context) {
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid order id", nil)
		return
	}
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := req.validate(); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	order := req.toModel()
	order.ID = id
	affected, err := h.Repo.UpdateOrder(c.Request.Context(), order)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if affected == 0 {
		Error(c, http.StatusNotFound, "order not found", nil)
		return
	}
	updated, err := h.Repo.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, updated, nil)
}

// @Summary Delete one order
// @Tags orders
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} apiResponse
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) remove(c *gin.Context) {
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid order id", nil)
		return
	}
	affected, err := h.Repo.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if affected == 0 {
		Error(c, http.StatusNotFound, "order not found", nil)
		return
	}
	Ok(c, nil, map[string]any{"deleted": affected})
}

// @Summary Delete all orders
// @Tags orders
// @Produce json
// @Success 200 {object} apiResponse
// @Router /api/orders [delete]
func (h *OrderHandler) clear(c *gin.Context) {
	affected, err := h.Repo.ClearOrders(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, nil, map[string]any{"deleted": affected})
}
