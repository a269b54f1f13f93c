package model

import "time"

// swagger:model Comment
type Comment struct {
	ID          uint      `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	MaterialID  uint      `gorm:"not null;index" json:"material_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CommentText string    `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
