package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/logger"
	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *types.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByDoctor(doctorID string) ([]*types.Review, error) {
	args := m.Called(doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByPatient(patientID string) ([]*types.Review, error) {
	args := m.Called(patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByAppointment(appointmentID string) (*types.Review, error) {
	args := m.Called(appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Review), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(apt *types.Appointment) error {
	args := m.Called(apt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(id string) (*types.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByOwner(ownerID string, role types.Role) ([]*types.Appointment, error) {
	args := m.Called(ownerID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(id string, status types.AppointmentStatus) (*types.Appointment, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateSchedule(id, newDate, newTime string) (*types.Appointment, error) {
	args := m.Called(id, newDate, newTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) AttachPrescription(id, prescriptionID string) (*types.Appointment, error) {
	args := m.Called(id, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func setupTestService() (*Service, *MockReviewRepository, *MockAppointmentRepository) {
	log := logger.New("debug")
	mockRepo := &MockReviewRepository{}
	mockAppointments := &MockAppointmentRepository{}

	service := NewService(log, mockRepo, mockAppointments)
	return service, mockRepo, mockAppointments
}

func TestService_CreateReview(t *testing.T) {
	service, mockRepo, mockAppointments := setupTestService()

	mockAppointments.On("GetByID", "apt-1").Return(&types.Appointment{
		ID: "apt-1", DoctorID: "doctor-1", PatientID: "patient-1",
		Status: types.StatusCompleted,
	}, nil)
	mockRepo.On("GetByAppointment", "apt-1").Return(nil,
		types.NewNotFoundError(types.ErrCodeNotFound, "no review for appointment: apt-1"))
	mockRepo.On("Create", mock.AnythingOfType("*types.Review")).Return(nil)

	created, err := service.CreateReview(&types.Review{
		AppointmentID: "apt-1",
		Rating:        5,
		ReviewText:    "Very thorough",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "doctor-1", created.DoctorID)
	assert.Equal(t, "patient-1", created.PatientID)
	assert.NotEmpty(t, created.Date)
}

func TestService_CreateReview_SecondReviewConflicts(t *testing.T) {
	service, mockRepo, mockAppointments := setupTestService()

	mockAppointments.On("GetByID", "apt-1").Return(&types.Appointment{
		ID: "apt-1", DoctorID: "doctor-1", PatientID: "patient-1",
	}, nil)
	mockRepo.On("GetByAppointment", "apt-1").Return(&types.Review{
		ID: "rev-1", AppointmentID: "apt-1",
	}, nil)

	_, err := service.CreateReview(&types.Review{AppointmentID: "apt-1", Rating: 4})
	require.Error(t, err)
	assert.True(t, types.IsConflict(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestService_CreateReview_RatingBounds(t *testing.T) {
	service, _, _ := setupTestService()

	for _, rating := range []int{0, -1, 6} {
		_, err := service.CreateReview(&types.Review{AppointmentID: "apt-1", Rating: rating})
		require.Error(t, err)
		assert.True(t, types.IsValidation(err))
	}
}

func TestService_CreateReview_UnknownAppointment(t *testing.T) {
	service, mockRepo, mockAppointments := setupTestService()

	mockAppointments.On("GetByID", "apt-1").Return(nil,
		types.NewNotFoundError(types.ErrCodeNotFound, "appointment not found: apt-1"))

	_, err := service.CreateReview(&types.Review{AppointmentID: "apt-1", Rating: 4})
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestService_ListByDoctor(t *testing.T) {
	service, mockRepo, _ := setupTestService()

	mockRepo.On("ListByDoctor", "doctor-1").Return([]*types.Review{
		{ID: "rev-1", Rating: 5},
		{ID: "rev-2", Rating: 3},
	}, nil)

	reviews, err := service.ListByDoctor("doctor-1")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
