package client

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type Repository interface {
	// ListClients returns every client ordered by cognome, then nome.
	ListClients(ctx context.Context) ([]models.Client, error)

	// GetClient returns httperr.ErrNotFound when id matches nothing.
	GetClient(ctx context.Context, id string) (*models.Client, error)

	// CreateClient assigns c.ID and stores the record.
	CreateClient(ctx context.Context, c *models.Client) error

	// UpdateClient merges patch into the stored record and returns the
	// result, or httperr.ErrNotFound. It never creates a record.
	UpdateClient(
		ctx context.Context,
		id string,
		patch models.ClientPatch,
	) (*models.Client, error)
}
