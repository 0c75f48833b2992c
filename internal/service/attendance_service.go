package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	apperrors "hrgate/internal/errors"
	"hrgate/internal/model"
	"hrgate/internal/repository"
)

// ResolveOutcome tells what a scan resolution did.
type ResolveOutcome string

const (
	ResolveCheckedIn     ResolveOutcome = "checked_in"
	ResolveCheckedOut    ResolveOutcome = "checked_out"
	ResolveAlreadyClosed ResolveOutcome = "already_closed"
)

// ResolveResult is the outcome of a scan resolution together with the day's
// record as it stands after the operation.
type ResolveResult struct {
	Outcome ResolveOutcome          `json:"outcome"`
	Record  *model.AttendanceRecord `json:"record"`
}

// AttendanceService resolves scanned identity tokens into check-ins and
// check-outs.
type AttendanceService interface {
	Resolve(ctx context.Context, token string) (*ResolveResult, error)
	List(ctx context.Context) ([]model.AttendanceRecord, error)
}

type attendanceService struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	// busy is the single-flight latch: while a resolution is in progress,
	// further scan events are dropped rather than queued. A QR scanner can
	// emit many decode events per second for the same physical code.
	busy atomic.Bool
	now  func() time.Time
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository) AttendanceService {
	return &attendanceService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Resolve turns one decoded token into a check-in, a check-out, or a no-op.
//
// The first scan of the day opens a record; the second closes it and persists
// the elapsed hours; any later scan on the same day does nothing. Check-in,
// check-out and the elapsed-hours base all come from the same clock, so the
// computed hours cannot suffer client/server skew. There is no cross-process
// coordination: two stations scanning the same badge simultaneously could
// double check-in, an accepted risk at single-station scale.
func (s *attendanceService) Resolve(ctx context.Context, token string) (*ResolveResult, error) {
	if token == "" {
		return nil, apperrors.ErrEmptyToken
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, apperrors.ErrScanInFlight
	}
	defer s.busy.Store(false)

	now := s.now()
	today := now.Format(model.DayKeyLayout)

	employee, err := s.employeeRepo.FindByToken(ctx, token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUnknownIdentity
		}
		return nil, fmt.Errorf("look up employee: %w", err)
	}

	record, err := s.attendanceRepo.FindByTokenAndDate(ctx, token, today)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("look up attendance: %w", err)
	}

	if record == nil {
		// First scan of the day: open a record with a name snapshot.
		record = &model.AttendanceRecord{
			IdentityToken: token,
			Name:          employee.Name,
			Date:          today,
			CheckIn:       now,
		}
		if err := s.attendanceRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("create attendance record: %w", err)
		}
		return &ResolveResult{Outcome: ResolveCheckedIn, Record: record}, nil
	}

	if !record.Open() {
		// Day already closed out for this identity; a later scan is a no-op.
		return &ResolveResult{Outcome: ResolveAlreadyClosed, Record: record}, nil
	}

	hoursWorked := now.Sub(record.CheckIn).Hours()
	if err := s.attendanceRepo.Close(ctx, record.ID, now, hoursWorked); err != nil {
		return nil, fmt.Errorf("close attendance record: %w", err)
	}
	checkOut := now
	record.CheckOut = &checkOut
	record.HoursWorked = &hoursWorked

	return &ResolveResult{Outcome: ResolveCheckedOut, Record: record}, nil
}

// List returns all attendance records, most recent check-in first.
func (s *attendanceService) List(ctx context.Context) ([]model.AttendanceRecord, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}
