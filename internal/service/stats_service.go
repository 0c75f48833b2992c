package service

import (
	"context"
	"fmt"
	"time"

	"hrgate/internal/model"
	"hrgate/internal/repository"
)

// StatsSummary holds the dashboard headline figures.
type StatsSummary struct {
	Employees    int64  `json:"employees"`
	PresentToday int64  `json:"present_today"`
	AbsentToday  int64  `json:"absent_today"`
	Date         string `json:"date"`
}

// StatsService produces roster/attendance counts for the dashboard.
type StatsService interface {
	Summary(ctx context.Context) (*StatsSummary, error)
}

type statsService struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	now            func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository) StatsService {
	return &statsService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Summary counts employees, today's attendance records, and the remainder as
// absences. Headcount changes during the day make the absent figure
// approximate; it is floored at zero.
func (s *statsService) Summary(ctx context.Context) (*StatsSummary, error) {
	today := s.now().Format(model.DayKeyLayout)

	employees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}

	present, err := s.attendanceRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}

	absent := employees - present
	if absent < 0 {
		absent = 0
	}

	return &StatsSummary{
		Employees:    employees,
		PresentToday: present,
		AbsentToday:  absent,
		Date:         today,
	}, nil
}
