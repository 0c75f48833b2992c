package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrgate/internal/model"
)

// AttendanceRepository defines attendance persistence operations.
type AttendanceRepository interface {
	Create(ctx context.Context, record *model.AttendanceRecord) error
	Close(ctx context.Context, id uuid.UUID, checkOut time.Time, hoursWorked float64) error
	FindByTokenAndDate(ctx context.Context, token, date string) (*model.AttendanceRecord, error)
	List(ctx context.Context) ([]model.AttendanceRecord, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create inserts a new attendance record.
func (r *attendanceRepository) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Close sets check-out and hours worked on an open record. Only those two
// columns are touched; check-in stays immutable.
func (r *attendanceRepository) Close(ctx context.Context, id uuid.UUID, checkOut time.Time, hoursWorked float64) error {
	return r.db.WithContext(ctx).Model(&model.AttendanceRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"check_out":    checkOut,
			"hours_worked": hoursWorked,
		}).Error
}

// FindByTokenAndDate finds the day's record for an identity, if any.
func (r *attendanceRepository) FindByTokenAndDate(ctx context.Context, token, date string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	if err := r.db.WithContext(ctx).
		Where("identity_token = ? AND date = ?", token, date).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns all attendance records, most recent check-in first.
func (r *attendanceRepository) List(ctx context.Context) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	if err := r.db.WithContext(ctx).Order("check_in desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CountByDate returns the number of records carrying the given day key.
func (r *attendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AttendanceRecord{}).
		Where("date = ?", date).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
