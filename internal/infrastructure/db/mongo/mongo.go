package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

const (
	collectionUsers    = "users"
	collectionFarms    = "farms"
	collectionBookings = "bookings"
	collectionReviews  = "reviews"
)

// Config captures the minimal settings required to establish a MongoDB
// connection. URI may be empty; the store then reports every request as
// storage-unavailable until it is configured and the process restarted.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Store owns the process-wide MongoDB connection. The connection is
// established lazily: a failed attempt at startup is not fatal, each request
// re-attempts through Database until one succeeds.
type Store struct {
	cfg Config
	log zerolog.Logger

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(cfg Config, log zerolog.Logger) *Store {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Store{cfg: cfg, log: log}
}

// Connect eagerly establishes the connection. Callers at startup may log the
// returned error and continue; later requests retry via Database.
func (s *Store) Connect(ctx context.Context) error {
	_, err := s.Database(ctx)
	return err
}

// Database returns the connected database handle, dialing on first use.
// Failures are wrapped in domain.ErrStoreUnavailable so callers up the stack
// map them deterministically. The lock only guards the cached handle; the
// dial itself runs unlocked so one request's connection timeout never stalls
// the others.
func (s *Store) Database(ctx context.Context) (*mongo.Database, error) {
	s.mu.Lock()
	if s.db != nil {
		db := s.db
		s.mu.Unlock()
		return db, nil
	}
	s.mu.Unlock()

	if s.cfg.URI == "" {
		return nil, fmt.Errorf("%w: connection string not configured", domain.ErrStoreUnavailable)
	}

	connectCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", domain.ErrStoreUnavailable, err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("%w: ping: %v", domain.ErrStoreUnavailable, err)
	}

	db := client.Database(s.cfg.Database)
	s.ensureIndexes(connectCtx, db)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		// A concurrent request won the dial; keep its handle.
		_ = client.Disconnect(context.Background())
		return s.db, nil
	}
	s.client = client
	s.db = db
	s.log.Info().Str("database", s.cfg.Database).Msg("mongodb connected")
	return db, nil
}

// ensureIndexes creates the unique index backing the users.email constraint.
// Runs on every (re)connect; CreateOne is a no-op when the index exists.
func (s *Store) ensureIndexes(ctx context.Context, db *mongo.Database) {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(collectionUsers).Indexes().CreateOne(ctx, idx); err != nil {
		s.log.Warn().Err(err).Msg("failed to ensure users.email unique index")
	}
}

// Ping verifies connectivity for readiness probes, dialing if necessary.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.Database(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, nil)
}

// Disconnect tears down the client if one was ever established.
func (s *Store) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	return err
}

// wrapErr classifies a driver error: network and timeout failures become
// domain.ErrStoreUnavailable, everything else is wrapped with the operation.
func wrapErr(op string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
