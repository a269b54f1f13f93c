package model

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// swagger:model Rating
type Rating struct {
	ID          uint      `gorm:"column:rating_id;primaryKey;autoIncrement" json:"rating_id"`
	MaterialID  uint      `gorm:"not null;index" json:"material_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	RatingValue int       `gorm:"not null;check:rating_value >= 1 AND rating_value <= 5" json:"rating_value"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingSummary 资料评分汇总
type RatingSummary struct {
	MaterialID uint    `json:"material_id"`
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
}
