package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity is an exercise entry; MET is the metabolic-equivalent intensity.
type Activity struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	UserID    uint            `gorm:"column:user_id;not null;index"`
	Title     string          `gorm:"column:title;not null"`
	MET       decimal.Decimal `gorm:"column:met;type:decimal(6,1);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Activity) TableName() string { return "activities" }
