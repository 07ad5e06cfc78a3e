package store

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealStore is the hosted key-value backend. Each collection is one
// record in the `collection` table, keyed by collection name, holding the
// serialized payload as a string. Semantics are identical to FileStore:
// whole-collection reads and writes, last write wins.
type SurrealStore struct {
	db     *surrealdb.DB
	config SurrealConfig
}

// SurrealConfig holds hosted backend connection settings
type SurrealConfig struct {
	URL       string
	User      string
	Password  string
	Namespace string
	Database  string
}

// NewSurrealStore creates a new SurrealStore instance
func NewSurrealStore(cfg SurrealConfig) *SurrealStore {
	return &SurrealStore{config: cfg}
}

// Connect establishes a connection to the hosted backend
func (s *SurrealStore) Connect(ctx context.Context) error {
	db, err := surrealdb.FromEndpointURLString(ctx, s.config.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Read returns the serialized collection, or ErrNotFound if no entry exists.
func (s *SurrealStore) Read(ctx context.Context, collection string) ([]byte, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[[]map[string]interface{}](ctx, s.db,
		"SELECT payload FROM collection WHERE name = $name LIMIT 1",
		map[string]interface{}{"name": collection},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", ErrConnection, collection, err)
	}
	if results == nil || len(*results) == 0 {
		return nil, ErrNotFound
	}

	first := (*results)[0]
	if first.Status != "OK" {
		if first.Error != nil {
			return nil, fmt.Errorf("%w: read %q: %s", ErrConnection, collection, first.Error.Message)
		}
		return nil, fmt.Errorf("%w: read %q", ErrConnection, collection)
	}
	if len(first.Result) == 0 {
		return nil, ErrNotFound
	}

	payload, ok := first.Result[0]["payload"].(string)
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(payload), nil
}

// Write replaces the collection entry, creating it if missing.
func (s *SurrealStore) Write(ctx context.Context, collection string, data []byte) error {
	if s.db == nil {
		return ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db,
		"UPSERT collection SET name = $name, payload = $payload WHERE name = $name",
		map[string]interface{}{
			"name":    collection,
			"payload": string(data),
		},
	)
	if err != nil {
		return fmt.Errorf("%w: write %q: %v", ErrConnection, collection, err)
	}
	if results != nil {
		for _, r := range *results {
			if r.Status != "OK" {
				if r.Error != nil {
					return fmt.Errorf("%w: write %q: %s", ErrConnection, collection, r.Error.Message)
				}
				return fmt.Errorf("%w: write %q", ErrConnection, collection)
			}
		}
	}
	return nil
}

// Ping checks the backend connection
func (s *SurrealStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Close closes the backend connection
func (s *SurrealStore) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}
