package models

import "time"

// Goal 表示一个储蓄目标
type Goal struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     uint       `gorm:"index;not null"`
	Name       string     `gorm:"size:64;not null"`
	AmountCent int64      `gorm:"not null"` // 目标金额（分）
	SavedCent  int64      `gorm:"not null;default:0"`
	TargetDate *time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
