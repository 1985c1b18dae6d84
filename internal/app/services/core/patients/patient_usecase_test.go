package patients

import (
	"context"
	"testing"

	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientTestFixture() (PatientUsecase, PatientRepository) {
	store := database.NewStore()
	repository := NewPatientMemoryRepository(store.Patients)
	return NewPatientUsecase(repository), repository
}

func sessionFor(userID int) *models.Session {
	return &models.Session{SessionID: "test-session", UserID: userID, Username: "drsofia"}
}

func TestPatientUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Comes From The Session", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()

		patient, err := usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{
			Name:  "Lucas Silva",
			Email: "lucas@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, patient.ID)
		assert.Equal(t, 7, patient.UserID, "ownership is taken from the session, never from the payload")
		assert.Equal(t, constvars.StatusActive, patient.Status, "status defaults to active")
	})

	t.Run("Explicit Status Is Kept", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()

		patient, err := usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{
			Name:   "Lucas Silva",
			Status: constvars.StatusInactive,
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.StatusInactive, patient.Status)
	})
}

func TestPatientUsecase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Patient Returns Not Found", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()

		_, err := usecase.GetByID(ctx, sessionFor(7), 99)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Another Practitioner's Patient Returns Forbidden", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()
		_, err := usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{Name: "Lucas Silva"})
		require.NoError(t, err)

		_, err = usecase.GetByID(ctx, sessionFor(8), 1)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode,
			"existing but unowned resources are forbidden, not hidden")
	})

	t.Run("Owner Sees The Patient", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()
		_, err := usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{Name: "Lucas Silva"})
		require.NoError(t, err)

		patient, err := usecase.GetByID(ctx, sessionFor(7), 1)

		require.NoError(t, err)
		assert.Equal(t, "Lucas Silva", patient.Name)
	})
}

func TestPatientUsecase_ListBySession(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists Are Scoped To The Practitioner", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()
		_, err := usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{Name: "Lucas Silva"})
		require.NoError(t, err)
		_, err = usecase.Create(ctx, sessionFor(8), &requests.CreatePatient{Name: "Maria Souza"})
		require.NoError(t, err)
		_, err = usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{Name: "Joao Pereira"})
		require.NoError(t, err)

		mine, err := usecase.ListBySession(ctx, sessionFor(7))
		require.NoError(t, err)
		theirs, err := usecase.ListBySession(ctx, sessionFor(8))
		require.NoError(t, err)

		require.Len(t, mine, 2)
		assert.Equal(t, "Lucas Silva", mine[0].Name, "creation order is preserved")
		assert.Equal(t, "Joao Pereira", mine[1].Name)
		require.Len(t, theirs, 1)
		assert.Equal(t, "Maria Souza", theirs[0].Name)
	})
}

func TestPatientUsecase_Update(t *testing.T) {
	ctx := context.Background()
	phone := "11987654321"
	name := "Lucas S. Silva"

	t.Run("Only Provided Fields Change", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()
		created, err := usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{
			Name:  "Lucas Silva",
			Email: "lucas@example.com",
		})
		require.NoError(t, err)

		updated, err := usecase.Update(ctx, sessionFor(7), created.ID, &requests.UpdatePatient{
			Phone: &phone,
		})

		require.NoError(t, err)
		assert.Equal(t, phone, updated.Phone)
		assert.Equal(t, "Lucas Silva", updated.Name, "unspecified fields stay put")
		assert.Equal(t, "lucas@example.com", updated.Email)
	})

	t.Run("Repeating The Same Patch Is Idempotent", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()
		created, err := usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{Name: "Lucas Silva"})
		require.NoError(t, err)

		patch := &requests.UpdatePatient{Name: &name, Phone: &phone}
		first, err := usecase.Update(ctx, sessionFor(7), created.ID, patch)
		require.NoError(t, err)
		second, err := usecase.Update(ctx, sessionFor(7), created.ID, patch)
		require.NoError(t, err)

		assert.Equal(t, first.Name, second.Name)
		assert.Equal(t, first.Phone, second.Phone)
		assert.Equal(t, first.Status, second.Status)
	})

	t.Run("Cross Practitioner Update Is Forbidden And Changes Nothing", func(t *testing.T) {
		usecase, repository := newPatientTestFixture()
		created, err := usecase.Create(ctx, sessionFor(7), &requests.CreatePatient{Name: "Lucas Silva"})
		require.NoError(t, err)

		_, err = usecase.Update(ctx, sessionFor(8), created.ID, &requests.UpdatePatient{Name: &name})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)

		stored, ok := repository.FindByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, "Lucas Silva", stored.Name, "the record must be untouched")
	})

	t.Run("Unknown Patient Returns Not Found", func(t *testing.T) {
		usecase, _ := newPatientTestFixture()

		_, err := usecase.Update(ctx, sessionFor(7), 42, &requests.UpdatePatient{Name: &name})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
