package models

import "time"

// User is the account identity. Staff accounts are the only ones allowed to
// mutate recipes, foods, and activities.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Name         string    `gorm:"column:name;not null"`
	FullName     string    `gorm:"column:fullname;not null;default:'Anonim'"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	IsStaff      bool      `gorm:"column:is_staff;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
