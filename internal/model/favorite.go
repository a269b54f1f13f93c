package model

import "time"

// swagger:model Favorite
type Favorite struct {
	ID         uint      `gorm:"column:favorite_id;primaryKey;autoIncrement" json:"favorite_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	MaterialID uint      `gorm:"not null;index" json:"material_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
