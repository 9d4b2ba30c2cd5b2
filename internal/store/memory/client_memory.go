// Package memory holds the in-process stores used when no database is
// configured. Contents live for the lifetime of the store value.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type ClientStore struct {
	mu      sync.Mutex
	clients []models.Client
}

func NewClientStore(seed ...models.Client) *ClientStore {
	s := &ClientStore{}
	s.clients = append(s.clients, seed...)
	return s
}

// DemoClients is the fixture loaded in mock mode when seeding is enabled.
func DemoClients() []models.Client {
	return []models.Client{
		{ID: "1", Nome: "Alice", Cognome: "Rossi", DataDiNascita: "1990-05-15", NumeroDiTelefono: "+39 333 1234567", Email: "alice.rossi@email.it"},
		{ID: "2", Nome: "Marco", Cognome: "Bianchi", DataDiNascita: "1985-11-20", NumeroDiTelefono: "+39 320 7654321", Email: "marco.bianchi@email.it"},
		{ID: "3", Nome: "Giulia", Cognome: "Verdi", DataDiNascita: "1992-03-08", NumeroDiTelefono: "+39 347 1112233", Email: "giulia.verdi@email.it"},
	}
}

func (s *ClientStore) ListClients(ctx context.Context) ([]models.Client, error) {
	s.mu.Lock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return domain.Less(out[i], out[j])
	})
	return out, nil
}

func (s *ClientStore) GetClient(ctx context.Context, id string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, httperr.ErrNotFound
	}
	c := s.clients[i]
	return &c, nil
}

func (s *ClientStore) CreateClient(ctx context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID()
	s.clients = append(s.clients, *c)
	return nil
}

func (s *ClientStore) UpdateClient(
	ctx context.Context,
	id string,
	patch models.ClientPatch,
) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, httperr.ErrNotFound
	}
	patch.Apply(&s.clients[i])

	c := s.clients[i]
	return &c, nil
}

func (s *ClientStore) indexOf(id string) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID is one more than the largest numeric id held; non-numeric ids
// count as zero.
func (s *ClientStore) nextID() string {
	highest := 0
	for _, c := range s.clients {
		if n, err := strconv.Atoi(c.ID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

var _ domain.Repository = (*ClientStore)(nil)
