package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type Repository interface {
	// CreateAppointment assigns ID, CreatedAt and UpdatedAt on ap and stores it.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListAppointmentsForDays returns appointments with from <= day <= to,
	// ordered by day then time.
	ListAppointmentsForDays(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)
}
