package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-agenda/internal/config"
	domainAppointment "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	domainClient "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	infraRepo "github.com/BruksfildServices01/salon-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
	"github.com/BruksfildServices01/salon-agenda/internal/store/memory"
	"github.com/BruksfildServices01/salon-agenda/internal/store/mongostore"
)

// Stores bundles the repositories of the selected backing store.
type Stores struct {
	Mode         string
	Clients      domainClient.Repository
	Appointments domainAppointment.Repository

	close func(context.Context) error
}

// Close releases the connection behind the stores, if any.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Memory returns fresh in-process stores, seeded with the demo clients
// when seed is true.
func Memory(seed bool) *Stores {
	var seedClients []models.Client
	if seed {
		seedClients = memory.DemoClients()
	}

	return &Stores{
		Mode:         config.StoreMemory,
		Clients:      memory.NewClientStore(seedClients...),
		Appointments: memory.NewAppointmentStore(),
	}
}

// Open picks the backing store from cfg. It is called once at startup.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Stores, error) {
	switch cfg.StoreMode() {
	case config.StoreMongo:
		client, err := NewMongo(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.MongoDB)

		clients := mongostore.NewClientStore(database)
		appointments := mongostore.NewAppointmentStore(database)
		for _, ix := range []interface {
			EnsureIndexes(context.Context) error
		}{clients, appointments} {
			if err := ix.EnsureIndexes(ctx); err != nil {
				log.Warn("[mongo] index setup failed", zap.Error(err))
			}
		}

		log.Info("[store] using MongoDB", zap.String("database", cfg.MongoDB))
		return &Stores{
			Mode:         config.StoreMongo,
			Clients:      clients,
			Appointments: appointments,
			close:        client.Disconnect,
		}, nil

	case config.StorePostgres:
		gdb, err := NewPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		log.Info("[store] using PostgreSQL")
		return &Stores{
			Mode:         config.StorePostgres,
			Clients:      infraRepo.NewClientGormRepository(gdb),
			Appointments: infraRepo.NewAppointmentGormRepository(gdb),
			close:        func(context.Context) error { return sqlDB.Close() },
		}, nil

	default:
		log.Warn("[store] MONGO_URI and DATABASE_URL are not set, using in-memory mock storage",
			zap.Bool("seeded", cfg.SeedMock))
		return Memory(cfg.SeedMock), nil
	}
}
