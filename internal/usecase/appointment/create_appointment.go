package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Day      string
	Time     string
	Duration int
	Location string

	// snapshot of the client at booking time
	ClientID   string
	ClientName string

	Note string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		Day:      in.Day,
		Time:     in.Time,
		Duration: in.Duration,
		Location: in.Location,
		Client: models.ClientRef{
			ID:   in.ClientID,
			Name: in.ClientName,
		},
		Note: in.Note,
	}

	if err := domain.Validate(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{
			"day":       ap.Day,
			"client_id": ap.Client.ID,
		},
	})

	return ap, nil
}
