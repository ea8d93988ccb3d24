package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one completed delivery work session. Dates and clock times are
// stored as opaque strings (YYYY-MM-DD / HH:MM); the calendar-day label is the
// grouping key and no timezone conversion is applied anywhere.
type Order struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Date      string `gorm:"type:varchar(10);not null;index" json:"date"`
	StartTime string `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string `gorm:"type:varchar(5);not null" json:"end_time"`

	// DurationMinutes is stored independently of the clock times and is not
	// recomputed server-side; it can diverge from the start/end span.
	DurationMinutes int `gorm:"not null" json:"duration_minutes"`

	Pay   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"pay"`
	Miles float64         `gorm:"type:numeric(10,2);not null" json:"miles"`

	Tip     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"tip"`
	BasePay decimal.Decimal `gorm:"column:base_pay;type:numeric(12,2);not null;default:0" json:"base_pay"`
	PeakPay decimal.Decimal `gorm:"column:peak_pay;type:numeric(12,2);not null;default:0" json:"peak_pay"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
