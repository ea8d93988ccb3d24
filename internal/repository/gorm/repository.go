package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"dashtrack/internal/models"
	"dashtrack/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- Orders -----------------------------------------------------------------

func (s *Store) InsertOrder(ctx context.Context, item *models.Order) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

// InsertOrdersBulk writes the whole batch inside one transaction so a partial
// failure rolls everything back; concurrent readers never observe a half
// inserted batch.
func (s *Store) InsertOrdersBulk(ctx context.Context, items []*models.Order) error {
	if s == nil || s.db == nil || len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item == nil {
				continue
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) GetOrderByID(ctx context.Context, id uint64) (*models.Order, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Order
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpdateOrder(ctx context.Context, item *models.Order) (int64, error) {
	if s == nil || s.db == nil || item == nil || item.ID == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"date":             item.Date,
			"start_time":       item.StartTime,
			"end_time":         item.EndTime,
			"duration_minutes": item.DurationMinutes,
			"pay":              item.Pay,
			"miles":            item.Miles,
			"tip":              item.Tip,
			"base_pay":         item.BasePay,
			"peak_pay":         item.PeakPay,
			"notes":            item.Notes,
		})
	return res.RowsAffected, res.Error
}

func (s *Store) DeleteOrder(ctx context.Context, id uint64) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{})
	return res.RowsAffected, res.Error
}

func (s *Store) ClearOrders(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Order{})
	return res.RowsAffected, res.Error
}

func (s *Store) ListOrders(ctx context.Context, params repository.ListOrdersParams) ([]models.Order, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyOrderFilters(s.db.WithContext(ctx).Model(&models.Order{}), params)
	query = applyOrder(query, params.OrderBy, params.Asc, "date desc, start_time desc")
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.Order
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountOrders(ctx context.Context, params repository.ListOrdersParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	query := applyOrderFilters(s.db.WithContext(ctx).Model(&models.Order{}), params)
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func applyOrderFilters(query *gorm.DB, params repository.ListOrdersParams) *gorm.DB {
	if params.StartDate != nil && strings.TrimSpace(*params.StartDate) != "" {
		query = query.Where("date >= ?", strings.TrimSpace(*params.StartDate))
	}
	if params.EndDate != nil && strings.TrimSpace(*params.EndDate) != "" {
		query = query.Where("date <= ?", strings.TrimSpace(*params.EndDate))
	}
	if params.MinPay != nil {
		query = query.Where("pay >= ?", *params.MinPay)
	}
	if params.MaxPay != nil {
		query = query.Where("pay <= ?", *params.MaxPay)
	}
	return query
}

// --- Aggregate rollups ------------------------------------------------------

func (s *Store) OverviewStats(ctx context.Context) (repository.OverviewRow, error) {
	if s == nil || s.db == nil {
		return repository.OverviewRow{}, nil
	}
	var row struct {
		TotalOrders    int64
		TotalEarnings  float64
		TotalMiles     float64
		TotalMinutes   int64
		AvgPayPerOrder float64
		FirstOrderDate string
		LastOrderDate  string
	}
	err := s.db.WithContext(ctx).
		Table("orders").
		Select(`
			COUNT(*) AS total_orders,
			COALESCE(SUM(pay),0) AS total_earnings,
			COALESCE(SUM(miles),0) AS total_miles,
			COALESCE(SUM(duration_minutes),0) AS total_minutes,
			COALESCE(AVG(pay),0) AS avg_pay_per_order,
			COALESCE(MIN(date),'') AS first_order_date,
			COALESCE(MAX(date),'') AS last_order_date
		`).
		Scan(&row).Error
	if err != nil {
		return repository.OverviewRow{}, err
	}
	return repository.OverviewRow{
		TotalOrders:    row.TotalOrders,
		TotalEarnings:  row.TotalEarnings,
		TotalMiles:     row.TotalMiles,
		TotalMinutes:   row.TotalMinutes,
		AvgPayPerOrder: row.AvgPayPerOrder,
		FirstOrderDate: row.FirstOrderDate,
		LastOrderDate:  row.LastOrderDate,
	}, nil
}

func (s *Store) DailyRollup(ctx context.Context, startDate, endDate string) ([]repository.DailyStatRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var rows []struct {
		Date           string
		TotalOrders    int64
		TotalPay       float64
		TotalMiles     float64
		TotalMinutes   int64
		AvgPayPerOrder float64
	}
	err := s.db.WithContext(ctx).
		Table("orders").
		Select(`
			date,
			COUNT(*) AS total_orders,
			COALESCE(SUM(pay),0) AS total_pay,
			COALESCE(SUM(miles),0) AS total_miles,
			COALESCE(SUM(duration_minutes),0) AS total_minutes,
			COALESCE(AVG(pay),0) AS avg_pay_per_order
		`).
		Where("date >= ?", startDate).
		Where("date <= ?", endDate).
		Group("date").
		Order("date desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]repository.DailyStatRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, repository.DailyStatRow{
			Date:           r.Date,
			TotalOrders:    r.TotalOrders,
			TotalPay:       r.TotalPay,
			TotalMiles:     r.TotalMiles,
			TotalMinutes:   r.TotalMinutes,
			AvgPayPerOrder: r.AvgPayPerOrder,
		})
	}
	return out, nil
}

// HourlyRollup buckets by the hour the session started; a session spanning
// midnight is credited wholly to its start hour. An empty date means all-time.
func (s *Store) HourlyRollup(ctx context.Context, date string) ([]repository.HourlyStatRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Table("orders")
	if strings.TrimSpace(date) != "" {
		query = query.Where("date = ?", strings.TrimSpace(date))
	}
	var rows []struct {
		Hour           int
		TotalOrders    int64
		TotalPay       float64
		TotalMiles     float64
		TotalMinutes   int64
		AvgPayPerOrder float64
	}
	err := query.
		Select(`
			CAST(SUBSTR(start_time, 1, 2) AS INTEGER) AS hour,
			COUNT(*) AS total_orders,
			COALESCE(SUM(pay),0) AS total_pay,
			COALESCE(SUM(miles),0) AS total_miles,
			COALESCE(SUM(duration_minutes),0) AS total_minutes,
			COALESCE(AVG(pay),0) AS avg_pay_per_order
		`).
		Group("CAST(SUBSTR(start_time, 1, 2) AS INTEGER)").
		Order("hour asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]repository.HourlyStatRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, repository.HourlyStatRow{
			Hour:           r.Hour,
			TotalOrders:    r.TotalOrders,
			TotalPay:       r.TotalPay,
			TotalMiles:     r.TotalMiles,
			TotalMinutes:   r.TotalMinutes,
			AvgPayPerOrder: r.AvgPayPerOrder,
		})
	}
	return out, nil
}

// --- helpers ----------------------------------------------------------------

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
		return query.Order(column)
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

// normalizeLimit only guards against non-positive values; request caps are
// the handler's job.
func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
