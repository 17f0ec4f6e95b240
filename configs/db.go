package configs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const pingTimeout = 5 * time.Second

// Store wraps the shared mongo client and tracks whether the database was
// reachable. A failed startup ping does not kill the process; the store is
// marked not-ready and Ready re-pings so a recovered database comes back
// without a restart.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	mu    sync.RWMutex
	ready bool
}

func ConnectStore(ctx context.Context, cfg *Config) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	s := &Store{client: client, db: client.Database(cfg.DBName)}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Error().Err(err).Msg("failed to connect to the database")
		return s, nil
	}

	s.setReady(true)
	log.Info().Str("database", cfg.DBName).Msg("database connected successfully")
	return s, nil
}

// Menus returns the collection holding one document per restaurant.
func (s *Store) Menus() *mongo.Collection {
	return s.db.Collection("menu")
}

// Ready reports whether the database is reachable. When the startup ping
// failed it retries, so readiness recovers as soon as the database does.
func (s *Store) Ready(ctx context.Context) bool {
	s.mu.RLock()
	ok := s.ready
	s.mu.RUnlock()
	if ok {
		return true
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return false
	}

	s.setReady(true)
	log.Info().Msg("database connection recovered")
	return true
}

func (s *Store) setReady(v bool) {
	s.mu.Lock()
	s.ready = v
	s.mu.Unlock()
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
