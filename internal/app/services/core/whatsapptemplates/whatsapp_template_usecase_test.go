package whatsapptemplates

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

func newTemplateTestFixture() WhatsappTemplateUsecase {
	store := database.NewStore()
	return NewWhatsappTemplateUsecase(NewWhatsappTemplateMemoryRepository(store.WhatsappTemplates))
}

func sessionFor(userID int) *models.Session {
	return &models.Session{SessionID: "test-session", UserID: userID, Username: "drsofia"}
}

func createRequest() *requests.CreateWhatsappTemplate {
	return &requests.CreateWhatsappTemplate{
		Name:                  "Day-before reminder",
		Message:               "Hello {patient_name}, you have a session on {date} at {start_time}.",
		TimeBeforeAppointment: 24,
		RequestConfirmation:   true,
		SendTime:              "09:00",
	}
}

func TestWhatsappTemplateUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Placeholders Are Stored Verbatim And Status Defaults To Active", func(t *testing.T) {
		usecase := newTemplateTestFixture()

		template, err := usecase.Create(ctx, sessionFor(7), createRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, template.ID)
		assert.Equal(t, 7, template.UserID)
		assert.Contains(t, template.Message, "{patient_name}", "placeholder tags are not interpolated")
		assert.Equal(t, constvars.StatusActive, template.Status)
		assert.True(t, template.RequestConfirmation)
	})
}

func TestWhatsappTemplateUsecase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Sees The Template", func(t *testing.T) {
		usecase := newTemplateTestFixture()
		created, err := usecase.Create(ctx, sessionFor(7), createRequest())
		require.NoError(t, err)

		template, err := usecase.GetByID(ctx, sessionFor(7), created.ID)

		require.NoError(t, err)
		assert.Equal(t, "Day-before reminder", template.Name)
	})

	t.Run("Unowned Template Is Forbidden", func(t *testing.T) {
		usecase := newTemplateTestFixture()
		created, err := usecase.Create(ctx, sessionFor(7), createRequest())
		require.NoError(t, err)

		_, err = usecase.GetByID(ctx, sessionFor(8), created.ID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Unknown Template Is Not Found", func(t *testing.T) {
		usecase := newTemplateTestFixture()

		_, err := usecase.GetByID(ctx, sessionFor(7), 42)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestWhatsappTemplateUsecase_ListBySession(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists Are Scoped To The Practitioner", func(t *testing.T) {
		usecase := newTemplateTestFixture()
		_, err := usecase.Create(ctx, sessionFor(7), createRequest())
		require.NoError(t, err)
		_, err = usecase.Create(ctx, sessionFor(8), createRequest())
		require.NoError(t, err)

		mine, err := usecase.ListBySession(ctx, sessionFor(7))

		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, 7, mine[0].UserID)
	})
}

func TestWhatsappTemplateUsecase_Update(t *testing.T) {
	ctx := context.Background()
	inactive := constvars.StatusInactive

	t.Run("Only Provided Fields Change", func(t *testing.T) {
		usecase := newTemplateTestFixture()
		created, err := usecase.Create(ctx, sessionFor(7), createRequest())
		require.NoError(t, err)

		updated, err := usecase.Update(ctx, sessionFor(7), created.ID, &requests.UpdateWhatsappTemplate{
			Status: &inactive,
		})

		require.NoError(t, err)
		assert.Equal(t, inactive, updated.Status)
		assert.Equal(t, created.Message, updated.Message, "unspecified fields stay put")
		assert.Equal(t, created.TimeBeforeAppointment, updated.TimeBeforeAppointment)
	})

	t.Run("Cross Practitioner Update Is Forbidden", func(t *testing.T) {
		usecase := newTemplateTestFixture()
		created, err := usecase.Create(ctx, sessionFor(7), createRequest())
		require.NoError(t, err)

		_, err = usecase.Update(ctx, sessionFor(8), created.ID, &requests.UpdateWhatsappTemplate{
			Status: &inactive,
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
