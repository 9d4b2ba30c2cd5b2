package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// byte-wise ordering so postgres sorts like the other stores
const clientOrder = `cognome COLLATE "C" ASC, nome COLLATE "C" ASC`

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var rows []ClientRow
	if err := r.db.WithContext(ctx).
		Order(clientOrder).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	out := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out, nil
}

func (r *ClientGormRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	row, err := r.find(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	c := row.model()
	return &c, nil
}

func (r *ClientGormRepository) CreateClient(ctx context.Context, c *models.Client) error {
	row := ClientRow{
		Nome:             c.Nome,
		Cognome:          c.Cognome,
		DataDiNascita:    c.DataDiNascita,
		NumeroDiTelefono: c.NumeroDiTelefono,
		Email:            c.Email,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	c.ID = row.ID
	return nil
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	id string,
	patch models.ClientPatch,
) (*models.Client, error) {

	var updated ClientRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.find(tx, id)
		if err != nil {
			return err
		}

		c := row.model()
		patch.Apply(&c)

		row.Nome = c.Nome
		row.Cognome = c.Cognome
		row.DataDiNascita = c.DataDiNascita
		row.NumeroDiTelefono = c.NumeroDiTelefono
		row.Email = c.Email

		if err := tx.Save(row).Error; err != nil {
			return fmt.Errorf("failed to update client %s: %w", id, err)
		}

		updated = *row
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := updated.model()
	return &c, nil
}

// find loads one row; ids that are not UUIDs cannot exist and are not found.
func (r *ClientGormRepository) find(db *gorm.DB, id string) (*ClientRow, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, httperr.ErrNotFound
	}

	var row ClientRow
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch client %s: %w", id, err)
	}
	return &row, nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
