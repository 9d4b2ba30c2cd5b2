package client

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update. Unknown ids yield httperr.ErrNotFound.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	id string,
	patch models.ClientPatch,
) (*models.Client, error) {

	if err := domain.ValidatePatch(patch); err != nil {
		return nil, err
	}

	c, err := uc.repo.UpdateClient(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: c.ID,
		Metadata: changedFields(patch),
	})

	return c, nil
}

func changedFields(p models.ClientPatch) []string {
	var fields []string
	if p.Nome != nil {
		fields = append(fields, "nome")
	}
	if p.Cognome != nil {
		fields = append(fields, "cognome")
	}
	if p.DataDiNascita != nil {
		fields = append(fields, "dataDiNascita")
	}
	if p.NumeroDiTelefono != nil {
		fields = append(fields, "numeroDiTelefono")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	return fields
}
