package client

import (
	"context"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

// Execute returns httperr.ErrNotFound for an unknown id.
func (uc *GetClient) Execute(ctx context.Context, id string) (*models.Client, error) {
	return uc.repo.GetClient(ctx, id)
}
