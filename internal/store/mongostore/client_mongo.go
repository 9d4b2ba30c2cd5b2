package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type clientDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Nome             string             `bson:"nome"`
	Cognome          string             `bson:"cognome"`
	DataDiNascita    string             `bson:"dataDiNascita,omitempty"`
	NumeroDiTelefono string             `bson:"numeroDiTelefono,omitempty"`
	Email            string             `bson:"email,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func (d clientDoc) model() models.Client {
	return models.Client{
		ID:               d.ID.Hex(),
		Nome:             d.Nome,
		Cognome:          d.Cognome,
		DataDiNascita:    d.DataDiNascita,
		NumeroDiTelefono: d.NumeroDiTelefono,
		Email:            d.Email,
	}
}

// clientSet is the $set document for a partial update.
func clientSet(p models.ClientPatch, at time.Time) bson.M {
	set := bson.M{"updatedAt": at}
	if p.Nome != nil {
		set["nome"] = *p.Nome
	}
	if p.Cognome != nil {
		set["cognome"] = *p.Cognome
	}
	if p.DataDiNascita != nil {
		set["dataDiNascita"] = *p.DataDiNascita
	}
	if p.NumeroDiTelefono != nil {
		set["numeroDiTelefono"] = *p.NumeroDiTelefono
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	return set
}

// ClientStore implements the client repository on a MongoDB collection.
type ClientStore struct {
	coll *mongo.Collection
}

func NewClientStore(db *mongo.Database) *ClientStore {
	return &ClientStore{coll: db.Collection(ClientsCollection)}
}

// EnsureIndexes creates the index backing the list ordering.
func (s *ClientStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "cognome", Value: 1}, {Key: "nome", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create client indexes: %w", err)
	}
	return nil
}

func (s *ClientStore) ListClients(ctx context.Context) ([]models.Client, error) {
	ctx, cancel := withTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "cognome", Value: 1}, {Key: "nome", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []clientDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}

	out := make([]models.Client, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (s *ClientStore) GetClient(ctx context.Context, id string) (*models.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.ErrNotFound
	}

	ctx, cancel := withTimeout(ctx, opTimeout)
	defer cancel()

	var d clientDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch client %s: %w", id, err)
	}

	c := d.model()
	return &c, nil
}

func (s *ClientStore) CreateClient(ctx context.Context, c *models.Client) error {
	ctx, cancel := withTimeout(ctx, opTimeout)
	defer cancel()

	at := now()
	d := clientDoc{
		ID:               primitive.NewObjectID(),
		Nome:             c.Nome,
		Cognome:          c.Cognome,
		DataDiNascita:    c.DataDiNascita,
		NumeroDiTelefono: c.NumeroDiTelefono,
		Email:            c.Email,
		CreatedAt:        at,
		UpdatedAt:        at,
	}

	if _, err := s.coll.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	c.ID = d.ID.Hex()
	return nil
}

func (s *ClientStore) UpdateClient(
	ctx context.Context,
	id string,
	patch models.ClientPatch,
) (*models.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.ErrNotFound
	}

	ctx, cancel := withTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d clientDoc
	err = s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": clientSet(patch, now())},
		opts,
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update client %s: %w", id, err)
	}

	c := d.model()
	return &c, nil
}

var _ domain.Repository = (*ClientStore)(nil)
