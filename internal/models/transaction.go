package models

import "time"

// Transaction 表示一笔收入或支出
// 金额用分存储，避免浮点误差，比如 12.34 元 = 1234 分
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Type        string    `gorm:"size:16;index;not null"` // income / expense
	Category    string    `gorm:"size:32;not null"`
	Description string    `gorm:"size:255"`
	AmountCent  int64     `gorm:"not null"`
	OccurredAt  time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
