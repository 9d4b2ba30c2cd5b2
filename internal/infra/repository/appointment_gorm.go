package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	row := AppointmentRow{
		Day:      ap.Day,
		Time:     ap.Time,
		Duration: ap.Duration,
		Location: ap.Location,
		Client:   ClientRefColumns{ID: ap.Client.ID, Name: ap.Client.Name},
		Note:     ap.Note,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	ap.ID = row.ID
	ap.CreatedAt = row.CreatedAt.UTC()
	ap.UpdatedAt = row.UpdatedAt.UTC()
	return nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDays(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	var rows []AppointmentRow
	if err := r.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", from, to).
		Order("day ASC, time ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	out := make([]models.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
