package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "hrgate/internal/errors"
	"hrgate/internal/model"
)

// MockIdentityRepository is a mock implementation of IdentityRepository.
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) Create(ctx context.Context, identity *model.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockIdentityRepository) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Identity), args.Error(1)
}

func (m *MockIdentityRepository) FindByToken(ctx context.Context, token string) (*model.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Identity), args.Error(1)
}

func (m *MockIdentityRepository) ListOrphans(ctx context.Context) ([]model.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Identity), args.Error(1)
}

// MockProvider is a mock implementation of identity.Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateIdentity(ctx context.Context, email, credential string) (string, error) {
	args := m.Called(ctx, email, credential)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Authenticate(ctx context.Context, email, credential string) (string, error) {
	args := m.Called(ctx, email, credential)
	return args.String(0), args.Error(1)
}

func TestRosterService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         EmployeeInput
		setupMock     func(*MockEmployeeRepository, *MockProvider)
		expectedError error
	}{
		{
			name: "successful creation provisions identity first",
			input: EmployeeInput{
				Name:       "Sara",
				Email:      "sara@example.com",
				HourlyRate: decimal.NewFromFloat(12.5),
			},
			setupMock: func(mEmp *MockEmployeeRepository, mProv *MockProvider) {
				mProv.On("CreateIdentity", mock.Anything, "sara@example.com", "123456").Return("token-1", nil)
				mEmp.On("Create", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)
			},
		},
		{
			name: "duplicate email aborts with no employee write",
			input: EmployeeInput{
				Name:       "Sara",
				Email:      "taken@example.com",
				HourlyRate: decimal.NewFromFloat(12.5),
			},
			setupMock: func(mEmp *MockEmployeeRepository, mProv *MockProvider) {
				mProv.On("CreateIdentity", mock.Anything, "taken@example.com", "123456").Return("", apperrors.ErrEmailTaken)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name: "negative rate rejected before provisioning",
			input: EmployeeInput{
				Name:       "Sara",
				Email:      "sara@example.com",
				HourlyRate: decimal.NewFromFloat(-1),
			},
			setupMock:     func(mEmp *MockEmployeeRepository, mProv *MockProvider) {},
			expectedError: apperrors.ErrNegativeRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEmp := new(MockEmployeeRepository)
			mockIdent := new(MockIdentityRepository)
			mockProv := new(MockProvider)
			tt.setupMock(mockEmp, mockProv)

			svc := NewRosterService(mockEmp, mockIdent, mockProv, nil, "123456")
			employee, err := svc.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, employee)
				mockEmp.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, employee)
				assert.Equal(t, "token-1", employee.IdentityToken)
				assert.Equal(t, model.RoleEmployee, employee.Role)
				assert.True(t, employee.Active)
			}

			mockEmp.AssertExpectations(t)
			mockProv.AssertExpectations(t)
		})
	}
}

func TestRosterService_Update_PreservesIdentityAndRole(t *testing.T) {
	id := uuid.New()
	existing := &model.Employee{
		ID:            id,
		IdentityToken: "token-1",
		Name:          "Sara",
		Email:         "sara@example.com",
		HourlyRate:    decimal.NewFromFloat(12.5),
		Role:          model.RoleEmployee,
		Active:        true,
	}

	mockEmp := new(MockEmployeeRepository)
	mockIdent := new(MockIdentityRepository)
	mockProv := new(MockProvider)
	mockEmp.On("FindByID", mock.Anything, id).Return(existing, nil)
	mockEmp.On("Update", mock.Anything, mock.AnythingOfType("*model.Employee")).Return(nil)

	svc := NewRosterService(mockEmp, mockIdent, mockProv, nil, "123456")
	updated, err := svc.Update(context.Background(), id, EmployeeInput{
		Name:       "Sara Khalid",
		Email:      "sara.k@example.com",
		HourlyRate: decimal.NewFromFloat(15),
		Department: "Reception",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Sara Khalid", updated.Name)
	assert.Equal(t, "token-1", updated.IdentityToken)
	assert.Equal(t, model.RoleEmployee, updated.Role)
	assert.True(t, updated.Active)
	// The provider is never touched by a roster edit.
	mockProv.AssertNotCalled(t, "CreateIdentity", mock.Anything, mock.Anything, mock.Anything)
	mockEmp.AssertExpectations(t)
}

func TestRosterService_Update_NotFound(t *testing.T) {
	id := uuid.New()
	mockEmp := new(MockEmployeeRepository)
	mockEmp.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewRosterService(mockEmp, new(MockIdentityRepository), new(MockProvider), nil, "123456")
	_, err := svc.Update(context.Background(), id, EmployeeInput{
		Name:  "Sara",
		Email: "sara@example.com",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	mockEmp.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRosterService_Delete(t *testing.T) {
	id := uuid.New()
	mockEmp := new(MockEmployeeRepository)
	mockEmp.On("Delete", mock.Anything, id).Return(nil)

	svc := NewRosterService(mockEmp, new(MockIdentityRepository), new(MockProvider), nil, "123456")
	err := svc.Delete(context.Background(), id)

	assert.NoError(t, err)
	mockEmp.AssertExpectations(t)
}

func TestRosterService_ScanPayload(t *testing.T) {
	id := uuid.New()
	mockEmp := new(MockEmployeeRepository)
	mockEmp.On("FindByID", mock.Anything, id).Return(&model.Employee{ID: id, IdentityToken: "token-1"}, nil)

	svc := NewRosterService(mockEmp, new(MockIdentityRepository), new(MockProvider), nil, "123456")
	payload, err := svc.ScanPayload(context.Background(), id)

	assert.NoError(t, err)
	// The payload is the raw identity token, no envelope.
	assert.Equal(t, "token-1", payload)
}

func TestRosterService_Orphans(t *testing.T) {
	orphan := model.Identity{Email: "ghost@example.com", Token: "token-x"}
	mockIdent := new(MockIdentityRepository)
	mockIdent.On("ListOrphans", mock.Anything).Return([]model.Identity{orphan}, nil)

	svc := NewRosterService(new(MockEmployeeRepository), mockIdent, new(MockProvider), nil, "123456")
	orphans, err := svc.Orphans(context.Background())

	assert.NoError(t, err)
	assert.Len(t, orphans, 1)
	assert.Equal(t, "token-x", orphans[0].Token)
}
