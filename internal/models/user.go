package models

import "time"

// User represents application user.
// 用户名区分大小写，唯一性由数据库的 uniqueIndex 保证。
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
