package appointments

import (
	"context"
	"testing"

	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/models"
	"atenda-service/internal/app/services/core/patients"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentTestFixture struct {
	usecase               AppointmentUsecase
	appointmentRepository AppointmentRepository
	patientRepository     patients.PatientRepository
}

func newAppointmentTestFixture() *appointmentTestFixture {
	store := database.NewStore()
	appointmentRepository := NewAppointmentMemoryRepository(store.Appointments)
	patientRepository := patients.NewPatientMemoryRepository(store.Patients)
	return &appointmentTestFixture{
		usecase:               NewAppointmentUsecase(appointmentRepository, patientRepository),
		appointmentRepository: appointmentRepository,
		patientRepository:     patientRepository,
	}
}

func (f *appointmentTestFixture) addPatient(ctx context.Context, userID int, name string) models.Patient {
	return f.patientRepository.Create(ctx, models.Patient{
		UserID: userID,
		Name:   name,
		Status: constvars.StatusActive,
	})
}

func sessionFor(userID int) *models.Session {
	return &models.Session{SessionID: "test-session", UserID: userID, Username: "drsofia"}
}

func createRequest(patientID int) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		PatientID: patientID,
		Date:      "2024-01-10",
		StartTime: "14:00",
		EndTime:   "14:50",
		Type:      "consultation",
	}
}

func TestAppointmentUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Creation Defaults Status To Pending", func(t *testing.T) {
		fixture := newAppointmentTestFixture()
		patient := fixture.addPatient(ctx, 7, "Lucas Silva")

		appointment, err := fixture.usecase.Create(ctx, sessionFor(7), createRequest(patient.ID))

		require.NoError(t, err)
		assert.Equal(t, 1, appointment.ID)
		assert.Equal(t, 7, appointment.UserID)
		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
	})

	t.Run("Another Practitioner's Patient Is Forbidden And Nothing Is Stored", func(t *testing.T) {
		fixture := newAppointmentTestFixture()
		patient := fixture.addPatient(ctx, 7, "Lucas Silva")

		_, err := fixture.usecase.Create(ctx, sessionFor(8), createRequest(patient.ID))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Empty(t, fixture.appointmentRepository.FindByUserID(ctx, 8),
			"the authorization check runs before anything is stored")
		assert.Empty(t, fixture.appointmentRepository.FindByPatientID(ctx, patient.ID))
	})

	t.Run("Unknown Patient Is Not Found", func(t *testing.T) {
		fixture := newAppointmentTestFixture()

		_, err := fixture.usecase.Create(ctx, sessionFor(7), createRequest(99))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_ListByDate(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Only The Practitioner's Appointments On That Exact Date", func(t *testing.T) {
		fixture := newAppointmentTestFixture()
		lucas := fixture.addPatient(ctx, 7, "Lucas Silva")
		maria := fixture.addPatient(ctx, 8, "Maria Souza")

		request := createRequest(lucas.ID)
		_, err := fixture.usecase.Create(ctx, sessionFor(7), request)
		require.NoError(t, err)

		otherDay := createRequest(lucas.ID)
		otherDay.Date = "2024-01-11"
		_, err = fixture.usecase.Create(ctx, sessionFor(7), otherDay)
		require.NoError(t, err)

		_, err = fixture.usecase.Create(ctx, sessionFor(8), createRequest(maria.ID))
		require.NoError(t, err)

		mine, err := fixture.usecase.ListByDate(ctx, sessionFor(7), "2024-01-10")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, lucas.ID, mine[0].PatientID)

		theirs, err := fixture.usecase.ListByDate(ctx, sessionFor(8), "2024-01-11")
		require.NoError(t, err)
		assert.Empty(t, theirs, "the other practitioner has nothing on that date")
	})

	t.Run("Malformed Date Is Rejected", func(t *testing.T) {
		fixture := newAppointmentTestFixture()

		_, err := fixture.usecase.ListByDate(ctx, sessionFor(7), "10-01-2024")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_ListByPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Sees The Patient's Appointments", func(t *testing.T) {
		fixture := newAppointmentTestFixture()
		patient := fixture.addPatient(ctx, 7, "Lucas Silva")
		_, err := fixture.usecase.Create(ctx, sessionFor(7), createRequest(patient.ID))
		require.NoError(t, err)

		list, err := fixture.usecase.ListByPatient(ctx, sessionFor(7), patient.ID)

		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Unowned Patient Is Forbidden", func(t *testing.T) {
		fixture := newAppointmentTestFixture()
		patient := fixture.addPatient(ctx, 7, "Lucas Silva")

		_, err := fixture.usecase.ListByPatient(ctx, sessionFor(8), patient.ID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_Update(t *testing.T) {
	ctx := context.Background()
	confirmed := constvars.AppointmentStatusConfirmed

	t.Run("Only Provided Fields Change", func(t *testing.T) {
		fixture := newAppointmentTestFixture()
		patient := fixture.addPatient(ctx, 7, "Lucas Silva")
		created, err := fixture.usecase.Create(ctx, sessionFor(7), createRequest(patient.ID))
		require.NoError(t, err)

		updated, err := fixture.usecase.Update(ctx, sessionFor(7), created.ID, &requests.UpdateAppointment{
			Status: &confirmed,
		})

		require.NoError(t, err)
		assert.Equal(t, confirmed, updated.Status)
		assert.Equal(t, "2024-01-10", updated.Date, "unspecified fields stay put")
		assert.Equal(t, "14:00", updated.StartTime)
	})

	t.Run("Cross Practitioner Update Is Forbidden", func(t *testing.T) {
		fixture := newAppointmentTestFixture()
		patient := fixture.addPatient(ctx, 7, "Lucas Silva")
		created, err := fixture.usecase.Create(ctx, sessionFor(7), createRequest(patient.ID))
		require.NoError(t, err)

		_, err = fixture.usecase.Update(ctx, sessionFor(8), created.ID, &requests.UpdateAppointment{
			Status: &confirmed,
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Unknown Appointment Is Not Found", func(t *testing.T) {
		fixture := newAppointmentTestFixture()

		_, err := fixture.usecase.Update(ctx, sessionFor(7), 42, &requests.UpdateAppointment{
			Status: &confirmed,
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
