package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type AppointmentStore struct {
	mu           sync.Mutex
	appointments []models.Appointment
	now          func() time.Time
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{now: func() time.Time { return time.Now().UTC() }}
}

func (s *AppointmentStore) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ap.ID = "mock-" + uuid.NewString()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	s.appointments = append(s.appointments, *ap)
	return nil
}

func (s *AppointmentStore) ListAppointmentsForDays(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {
	s.mu.Lock()
	out := make([]models.Appointment, 0, len(s.appointments))
	for _, ap := range s.appointments {
		if ap.Day >= from && ap.Day <= to {
			out = append(out, ap)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return domain.Less(out[i], out[j])
	})
	return out, nil
}

var _ domain.Repository = (*AppointmentStore)(nil)
