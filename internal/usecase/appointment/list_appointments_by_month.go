package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

// Execute lists the appointments of month ("YYYY-MM"). An empty or
// malformed month lists everything.
func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	month string,
) ([]models.Appointment, error) {

	from, to := domain.MonthRange(month)

	appointments, err := uc.repo.ListAppointmentsForDays(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	return appointments, nil
}
