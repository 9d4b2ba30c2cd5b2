package models

// Client is a salon customer. Nome and Cognome are always present.
type Client struct {
	ID               string `json:"id"`
	Nome             string `json:"nome"`
	Cognome          string `json:"cognome"`
	DataDiNascita    string `json:"dataDiNascita,omitempty"`
	NumeroDiTelefono string `json:"numeroDiTelefono,omitempty"`
	Email            string `json:"email,omitempty"`
}

// ClientPatch carries the fields of a partial update. A nil field is left
// untouched on the stored record.
type ClientPatch struct {
	Nome             *string
	Cognome          *string
	DataDiNascita    *string
	NumeroDiTelefono *string
	Email            *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ClientPatch) IsEmpty() bool {
	return p.Nome == nil && p.Cognome == nil && p.DataDiNascita == nil &&
		p.NumeroDiTelefono == nil && p.Email == nil
}

// Apply merges the supplied fields into c.
func (p ClientPatch) Apply(c *Client) {
	if p.Nome != nil {
		c.Nome = *p.Nome
	}
	if p.Cognome != nil {
		c.Cognome = *p.Cognome
	}
	if p.DataDiNascita != nil {
		c.DataDiNascita = *p.DataDiNascita
	}
	if p.NumeroDiTelefono != nil {
		c.NumeroDiTelefono = *p.NumeroDiTelefono
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
}
