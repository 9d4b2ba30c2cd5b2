package client

import (
	"context"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context) ([]models.Client, error) {
	clients, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}
