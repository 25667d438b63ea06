package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile holds the per-user nutrition targets, one row per user.
type Profile struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	UserID      uint            `gorm:"column:user_id;not null;uniqueIndex"`
	CalorieGoal decimal.Decimal `gorm:"column:calorie_goal;type:decimal(6,1)"`
	Weight      decimal.Decimal `gorm:"column:weight;type:decimal(6,1)"`
	Height      decimal.Decimal `gorm:"column:height;type:decimal(6,2)"`
	Gender      string          `gorm:"column:gender;type:text"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
