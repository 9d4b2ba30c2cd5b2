package client

import (
	"strings"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// ValidateNew requires the name fields on a client about to be created.
func ValidateNew(c *models.Client) error {
	if strings.TrimSpace(c.Nome) == "" {
		return httperr.ErrValidation("nome", "required")
	}
	if strings.TrimSpace(c.Cognome) == "" {
		return httperr.ErrValidation("cognome", "required")
	}
	return nil
}

// ValidatePatch rejects updates that would blank out a name field.
func ValidatePatch(p models.ClientPatch) error {
	if p.Nome != nil && strings.TrimSpace(*p.Nome) == "" {
		return httperr.ErrValidation("nome", "required")
	}
	if p.Cognome != nil && strings.TrimSpace(*p.Cognome) == "" {
		return httperr.ErrValidation("cognome", "required")
	}
	return nil
}

// Less orders clients by cognome, then nome, comparing bytes.
func Less(a, b models.Client) bool {
	if a.Cognome != b.Cognome {
		return a.Cognome < b.Cognome
	}
	return a.Nome < b.Nome
}
