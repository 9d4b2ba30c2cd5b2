package dto

import "github.com/BruksfildServices01/salon-agenda/internal/models"

type CreateClientRequest struct {
	Nome             string `json:"nome"`
	Cognome          string `json:"cognome"`
	DataDiNascita    string `json:"dataDiNascita"`
	NumeroDiTelefono string `json:"numeroDiTelefono"`
	Email            string `json:"email"`
}

// UpdateClientRequest distinguishes absent fields (nil) from supplied ones.
type UpdateClientRequest struct {
	Nome             *string `json:"nome"`
	Cognome          *string `json:"cognome"`
	DataDiNascita    *string `json:"dataDiNascita"`
	NumeroDiTelefono *string `json:"numeroDiTelefono"`
	Email            *string `json:"email"`
}

func (r UpdateClientRequest) Patch() models.ClientPatch {
	return models.ClientPatch{
		Nome:             r.Nome,
		Cognome:          r.Cognome,
		DataDiNascita:    r.DataDiNascita,
		NumeroDiTelefono: r.NumeroDiTelefono,
		Email:            r.Email,
	}
}
