package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type clientRefDoc struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
}

type appointmentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Day       string             `bson:"day"`
	Time      string             `bson:"time"`
	Duration  int                `bson:"duration"`
	Location  string             `bson:"location"`
	Client    clientRefDoc       `bson:"client"`
	Note      string             `bson:"note,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d appointmentDoc) model() models.Appointment {
	return models.Appointment{
		ID:        d.ID.Hex(),
		Day:       d.Day,
		Time:      d.Time,
		Duration:  d.Duration,
		Location:  d.Location,
		Client:    models.ClientRef{ID: d.Client.ID, Name: d.Client.Name},
		Note:      d.Note,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// dayRangeFilter matches documents whose day string lies in [from, to].
func dayRangeFilter(from, to string) bson.M {
	return bson.M{"day": bson.M{"$gte": from, "$lte": to}}
}

// AppointmentStore implements the appointment repository on a MongoDB collection.
type AppointmentStore struct {
	coll *mongo.Collection
}

func NewAppointmentStore(db *mongo.Database) *AppointmentStore {
	return &AppointmentStore{coll: db.Collection(AppointmentsCollection)}
}

func (s *AppointmentStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "day", Value: 1}, {Key: "time", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}

func (s *AppointmentStore) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ctx, cancel := withTimeout(ctx, opTimeout)
	defer cancel()

	at := now()
	d := appointmentDoc{
		ID:        primitive.NewObjectID(),
		Day:       ap.Day,
		Time:      ap.Time,
		Duration:  ap.Duration,
		Location:  ap.Location,
		Client:    clientRefDoc{ID: ap.Client.ID, Name: ap.Client.Name},
		Note:      ap.Note,
		CreatedAt: at,
		UpdatedAt: at,
	}

	if _, err := s.coll.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	ap.ID = d.ID.Hex()
	ap.CreatedAt = at
	ap.UpdatedAt = at
	return nil
}

func (s *AppointmentStore) ListAppointmentsForDays(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {
	ctx, cancel := withTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := s.coll.Find(ctx, dayRangeFilter(from, to), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []appointmentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}

	out := make([]models.Appointment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

var _ domain.Repository = (*AppointmentStore)(nil)
