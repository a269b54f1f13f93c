package service

import (
	"context"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"strings"
)

// CatalogService 院系与课程
type CatalogService struct {
	DepartmentRepo *repository.DepartmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewCatalogService(departmentRepo *repository.DepartmentRepository, courseRepo *repository.CourseRepository) *CatalogService {
	return &CatalogService{
		DepartmentRepo: departmentRepo,
		CourseRepo:     courseRepo,
	}
}

func (s *CatalogService) CreateDepartment(ctx context.Context, name string) (*model.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.Validation("Department name is required")
	}

	department := &model.Department{Name: name}
	if err := s.DepartmentRepo.Create(ctx, department); err != nil {
		return nil, util.Store(err)
	}
	return department, nil
}

func (s *CatalogService) ListDepartments(ctx context.Context) ([]model.Department, error) {
	departments, err := s.DepartmentRepo.List(ctx)
	if err != nil {
		return nil, util.Store(err)
	}
	return departments, nil
}

func (s *CatalogService) CreateCourse(ctx context.Context, course *model.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return util.Validation("Course name is required")
	}
	if err := s.CourseRepo.Create(ctx, course); err != nil {
		return util.Store(err)
	}
	return nil
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.CourseRepo.List(ctx)
	if err != nil {
		return nil, util.Store(err)
	}
	return courses, nil
}
