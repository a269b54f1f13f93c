package model

// swagger:model Course
type Course struct {
	ID          uint   `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	Name        string `gorm:"column:course_name;size:200;not null" json:"course_name"`
	Category    string `gorm:"column:course_category;size:100" json:"course_category"`
	Description string `gorm:"type:text" json:"description"`
}

func (Course) TableName() string {
	return "courses"
}
