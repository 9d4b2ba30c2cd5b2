package client

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type CreateClientInput struct {
	Nome             string
	Cognome          string
	DataDiNascita    string
	NumeroDiTelefono string
	Email            string
}

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	c := &models.Client{
		Nome:             in.Nome,
		Cognome:          in.Cognome,
		DataDiNascita:    in.DataDiNascita,
		NumeroDiTelefono: in.NumeroDiTelefono,
		Email:            in.Email,
	}

	if err := domain.ValidateNew(c); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: c.ID,
	})

	return c, nil
}
