package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hrgate/internal/model"
)

func TestStatsService_Summary(t *testing.T) {
	now := time.Date(2024, 3, 11, 10, 0, 0, 0, time.Local)
	today := now.Format(model.DayKeyLayout)

	tests := []struct {
		name      string
		employees int64
		present   int64
		absent    int64
	}{
		{name: "some absent", employees: 10, present: 7, absent: 3},
		{name: "everyone present", employees: 5, present: 5, absent: 0},
		{name: "roster shrank below attendance", employees: 3, present: 5, absent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEmp := new(MockEmployeeRepository)
			mockAtt := new(MockAttendanceRepository)
			mockEmp.On("Count", mock.Anything).Return(tt.employees, nil)
			mockAtt.On("CountByDate", mock.Anything, today).Return(tt.present, nil)

			svc := NewStatsService(mockEmp, mockAtt).(*statsService)
			svc.now = func() time.Time { return now }

			summary, err := svc.Summary(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.employees, summary.Employees)
			assert.Equal(t, tt.present, summary.PresentToday)
			assert.Equal(t, tt.absent, summary.AbsentToday)
			assert.Equal(t, today, summary.Date)
		})
	}
}
