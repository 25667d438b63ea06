package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe is a staff-curated dish with its macro breakdown. The owner is the
// user that created the row and never changes afterwards.
type Recipe struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	UserID      uint            `gorm:"column:user_id;not null;index"`
	Title       string          `gorm:"column:title;not null"`
	Category    string          `gorm:"column:category;not null"`
	TimeMinutes int             `gorm:"column:time_minutes;not null"`
	Calories    decimal.Decimal `gorm:"column:calories;type:decimal(6,1);not null"`
	Protein     decimal.Decimal `gorm:"column:protein;type:decimal(6,1);not null"`
	Carbs       decimal.Decimal `gorm:"column:carbs;type:decimal(6,1);not null"`
	Fibers      decimal.Decimal `gorm:"column:fibers;type:decimal(6,1);not null"`
	Fat         decimal.Decimal `gorm:"column:fat;type:decimal(6,1);not null"`
	Description string          `gorm:"column:description;type:text"`
	Ingredients string          `gorm:"column:ingredients;type:text"`
	Image       *string         `gorm:"column:image"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
