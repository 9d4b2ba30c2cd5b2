package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// ClientRow is the clients table.
type ClientRow struct {
	ID               string `gorm:"primaryKey;size:36"`
	Nome             string `gorm:"type:text;not null;index:idx_clients_name,priority:2"`
	Cognome          string `gorm:"type:text;not null;index:idx_clients_name,priority:1"`
	DataDiNascita    string `gorm:"type:text"`
	NumeroDiTelefono string `gorm:"type:text"`
	Email            string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClientRow) TableName() string { return "clients" }

func (r *ClientRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r ClientRow) model() models.Client {
	return models.Client{
		ID:               r.ID,
		Nome:             r.Nome,
		Cognome:          r.Cognome,
		DataDiNascita:    r.DataDiNascita,
		NumeroDiTelefono: r.NumeroDiTelefono,
		Email:            r.Email,
	}
}

// ClientRefColumns is the client snapshot embedded in an appointment row.
type ClientRefColumns struct {
	ID   string `gorm:"type:text"`
	Name string `gorm:"type:text"`
}

// AppointmentRow is the appointments table. Day, time and location are
// bounded by validation; every other text column is unbounded.
type AppointmentRow struct {
	ID       string           `gorm:"primaryKey;size:36"`
	Day      string           `gorm:"size:10;not null;index:idx_appointments_day_time,priority:1"`
	Time     string           `gorm:"size:5;not null;index:idx_appointments_day_time,priority:2"`
	Duration int              `gorm:"not null"`
	Location string           `gorm:"size:20;not null"`
	Client   ClientRefColumns `gorm:"embedded;embeddedPrefix:client_"`
	Note     string           `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AppointmentRow) TableName() string { return "appointments" }

func (r *AppointmentRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r AppointmentRow) model() models.Appointment {
	return models.Appointment{
		ID:        r.ID,
		Day:       r.Day,
		Time:      r.Time,
		Duration:  r.Duration,
		Location:  r.Location,
		Client:    models.ClientRef{ID: r.Client.ID, Name: r.Client.Name},
		Note:      r.Note,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}
