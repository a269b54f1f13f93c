package model

// swagger:model Department
type Department struct {
	ID   uint   `gorm:"column:department_id;primaryKey;autoIncrement" json:"department_id"`
	Name string `gorm:"column:department_name;size:150;uniqueIndex;not null" json:"department_name"`
}

func (Department) TableName() string {
	return "departments"
}
