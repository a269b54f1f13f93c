package repository

import (
	"context"
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, department *model.Department) error {
	return r.DB.WithContext(ctx).Create(department).Error
}

func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*model.Department, error) {
	var department model.Department
	err := r.DB.WithContext(ctx).Where("department_name = ?", name).First(&department).Error
	return &department, err
}

func (r *DepartmentRepository) List(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	err := r.DB.WithContext(ctx).Find(&departments).Error
	return departments, err
}
