package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrgate/internal/model"
)

// EmployeeRepository defines roster persistence operations.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindByToken(ctx context.Context, token string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Count(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create inserts a new employee record.
func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// Update saves the full employee record.
func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete removes an employee record. Attendance history referencing the
// identity token is intentionally left in place.
func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds an employee by ID.
func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByToken finds an employee by identity token.
func (r *employeeRepository) FindByToken(ctx context.Context, token string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("identity_token = ?", token).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// List returns all employees.
func (r *employeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Count returns the number of employees on the roster.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Employee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
