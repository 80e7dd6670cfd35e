package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/logger"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// IdGenerator produces the unique suffix appended to the entity-type prefix
// ("thread-", "comment-"). Injected so tests can use deterministic ids.
type IdGenerator func() string

// Storage implements the thread and comment repository contracts over a
// single postgres connection pool.
type Storage struct {
	db    *sql.DB
	newId IdGenerator
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db, newId: uuid.NewString}, nil
}

// NewWithIdGenerator wires an explicit pool and id generator. Used by tests.
func NewWithIdGenerator(db *sql.DB, newId IdGenerator) *Storage {
	return &Storage{db: db, newId: newId}
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping is used by the readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
