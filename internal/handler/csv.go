package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dashtrack/internal/models"
	"dashtrack/internal/repository"
)

// csvHeader is the canonical column order for export; import matches columns
// by name so reordered files still load.
var csvHeader = []string{
	"id", "date", "start_time", "end_time", "duration_minutes",
	"pay", "miles", "tip", "base_pay", "peak_pay", "notes",
}

const (
	csvPageSize      = 500
	maxCSVImportRows = 1000
)

// @Summary Export all orders as CSV
// @Tags orders
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /api/export/orders [get]
func (h *OrderHandler) exportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(csvHeader); err != nil {
		return
	}

	// The sort key must be unique: paging on date alone lets page boundaries
	// cut inside a date group, duplicating or dropping rows.
	asc := true
	offset := 0
	for {
		page, err := h.Repo.ListOrders(c.Request.Context(), repository.ListOrdersParams{
			Limit:   csvPageSize,
			Offset:  offset,
			OrderBy: "date, id",
			Asc:     &asc,
		})
		if err != nil {
			// Headers are already on the wire, nothing sane to report.
			return
		}
		for i := range page {
			if err := w.Write(orderToRecord(&page[i])); err != nil {
				return
			}
		}
		if len(page) < csvPageSize {
			break
		}
		offset += csvPageSize
	}
	w.Flush()
}

func orderToRecord(o *models.Order) []string {
	return []string{
		strconv.FormatUint(o.ID, 10),
		o.Date,
		o.StartTime,
		o.EndTime,
		strconv.Itoa(o.DurationMinutes),
		o.Pay.StringFixed(2),
		strconv.FormatFloat(o.Miles, 'f', 2, 64),
		o.Tip.StringFixed(2),
		o.BasePay.StringFixed(2),
		o.PeakPay.StringFixed(2),
		o.Notes,
	}
}

// @Summary Import orders from a CSV body
// @Tags orders
// @Accept text/csv
// @Produce json
// @Success 201 {object} apiResponse
// @Router /api/orders/import [post]
func (h *OrderHandler) importCSV(c *gin.Context) {
	reqs, err := parseOrdersCSV(c.Request.Body)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if len(reqs) == 0 {
		Error(c, http.StatusBadRequest, "csv contains no data rows", nil)
		return
	}
	items := make([]*models.Order, 0, len(reqs))
	for i := range reqs {
		if err := reqs[i].validate(); err != nil {
			Error(c, http.StatusBadRequest, fmt.Sprintf("row %d: %s", i+2, err.Error()), nil)
			return
		}
		items = append(items, reqs[i].toModel())
	}
	if err := h.Repo.InsertOrdersBulk(c.Request.Context(), items); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Created(c, nil, map[string]any{"inserted": len(items)})
}

func parseOrdersCSV(r io.Reader) ([]orderRequest, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "start_time", "end_time", "duration_minutes"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv is missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}
	floatField := func(record []string, name string) (float64, error) {
		raw := field(record, name)
		if raw == "" {
			return 0, nil
		}
		return strconv.ParseFloat(raw, 64)
	}

	var reqs []orderRequest
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if len(reqs) >= maxCSVImportRows {
			return nil, fmt.Errorf("csv import cannot exceed %d rows", maxCSVImportRows)
		}

		duration, err := strconv.Atoi(field(record, "duration_minutes"))
		if err != nil {
			return nil, fmt.Errorf("row %d: duration_minutes: %w", line, err)
		}
		req := orderRequest{
			Date:            field(record, "date"),
			StartTime:       field(record, "start_time"),
			EndTime:         field(record, "end_time"),
			DurationMinutes: duration,
			Notes:           field(record, "notes"),
		}
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{"pay", &req.Pay},
			{"miles", &req.Miles},
			{"tip", &req.Tip},
			{"base_pay", &req.BasePay},
			{"peak_pay", &req.PeakPay},
		} {
			v, err := floatField(record, f.name)
			if err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", line, f.name, err)
			}
			*f.dst = v
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
