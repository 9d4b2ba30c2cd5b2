package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
	"github.com/BruksfildServices01/salon-agenda/internal/store/memory"
)

func newDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()
	d := audit.NewDispatcher(audit.New(zap.NewNop()), zap.NewNop())
	t.Cleanup(d.Close)
	return d
}

func input(day, hm string) CreateAppointmentInput {
	return CreateAppointmentInput{
		Day:        day,
		Time:       hm,
		Duration:   60,
		Location:   "Milan",
		ClientID:   "1",
		ClientName: "Alice Rossi",
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := memory.NewAppointmentStore()
	uc := NewCreateAppointment(repo, newDispatcher(t))

	in := input("2024-02-10", "10:00")
	in.Note = "taglio + piega"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, ap.ID)
	assert.False(t, ap.CreatedAt.IsZero())
	assert.Equal(t, "2024-02-10", ap.Day)
	assert.Equal(t, "10:00", ap.Time)
	assert.Equal(t, 60, ap.Duration)
	assert.Equal(t, "Milan", ap.Location)
	assert.Equal(t, models.ClientRef{ID: "1", Name: "Alice Rossi"}, ap.Client)
	assert.Equal(t, "taglio + piega", ap.Note)
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := memory.NewAppointmentStore()
	uc := NewCreateAppointment(repo, newDispatcher(t))

	bad := input("2024-02-10", "10:00")
	bad.Location = "Rome"

	_, err := uc.Execute(context.Background(), bad)
	assert.True(t, httperr.IsValidation(err))

	list, err := NewListAppointmentsByMonth(repo).Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateAppointmentRejectsUnpaddedTime(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAppointmentStore()
	create := NewCreateAppointment(repo, newDispatcher(t))

	_, err := create.Execute(ctx, input("2024-02-10", "10:00"))
	require.NoError(t, err)

	_, err = create.Execute(ctx, input("2024-02-10", "9:30"))
	assert.True(t, httperr.IsValidation(err))

	_, err = create.Execute(ctx, input("2024-02-10", "09:30"))
	require.NoError(t, err)

	feb, err := NewListAppointmentsByMonth(repo).Execute(ctx, "2024-02")
	require.NoError(t, err)
	require.Len(t, feb, 2)
	assert.Equal(t, "09:30", feb[0].Time)
	assert.Equal(t, "10:00", feb[1].Time)
}

func TestListAppointmentsByMonth(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAppointmentStore()
	create := NewCreateAppointment(repo, newDispatcher(t))
	list := NewListAppointmentsByMonth(repo)

	for _, d := range []string{"2024-03-01", "2024-02-29", "2024-01-31", "2024-02-01"} {
		_, err := create.Execute(ctx, input(d, "09:00"))
		require.NoError(t, err)
	}

	feb, err := list.Execute(ctx, "2024-02")
	require.NoError(t, err)
	require.Len(t, feb, 2)
	assert.Equal(t, "2024-02-01", feb[0].Day)
	assert.Equal(t, "2024-02-29", feb[1].Day)

	all, err := list.Execute(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	malformed, err := list.Execute(ctx, "2024-xx")
	require.NoError(t, err)
	assert.Len(t, malformed, 4)

	empty, err := list.Execute(ctx, "2030-01")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSnapshotIsFrozen(t *testing.T) {
	ctx := context.Background()
	clients := memory.NewClientStore(memory.DemoClients()...)
	appointments := memory.NewAppointmentStore()
	create := NewCreateAppointment(appointments, newDispatcher(t))

	_, err := create.Execute(ctx, input("2024-02-10", "10:00"))
	require.NoError(t, err)

	renamed := "Alessandra"
	_, err = clients.UpdateClient(ctx, "1", models.ClientPatch{Nome: &renamed})
	require.NoError(t, err)

	list, err := NewListAppointmentsByMonth(appointments).Execute(ctx, "2024-02")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice Rossi", list[0].Client.Name)
}
