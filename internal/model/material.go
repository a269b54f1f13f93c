package model

import "time"

// Material 上传到文件托管服务的课程资料。FilePath 是公开下载链接，FileID 是托管方的对象标识。
// swagger:model Material
type Material struct {
	ID           uint      `gorm:"column:material_id;primaryKey;autoIncrement" json:"material_id"`
	Title        string    `gorm:"column:material_title;size:255;not null" json:"material_title"`
	FilePath     string    `gorm:"column:file_path;size:512;not null" json:"file_path"`
	FileID       string    `gorm:"column:file_id;size:255" json:"file_id"`
	DepartmentID uint      `gorm:"column:department_id;not null;index" json:"department_id"`
	UploadedBy   uint      `gorm:"column:uploaded_by;not null;index" json:"uploaded_by"`
	UploadDate   time.Time `gorm:"column:upload_date;autoCreateTime" json:"upload_date"`
}

func (Material) TableName() string {
	return "materials"
}
