package models

import "time"

// Bill 表示一笔待付账单
type Bill struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Description string    `gorm:"size:255;not null"`
	AmountCent  int64     `gorm:"not null"`
	DueDate     time.Time `gorm:"index;not null"`
	Paid        bool      `gorm:"index;not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
