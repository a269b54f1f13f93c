package model

import "time"

// swagger:model ActivityLog
type ActivityLog struct {
	ID        uint      `gorm:"column:log_id;primaryKey;autoIncrement" json:"log_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
