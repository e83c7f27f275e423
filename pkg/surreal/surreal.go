package surreal

import (
	"context"
	"fmt"

	"streamtube/pkg/config"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// Connect opens a SurrealDB connection, authenticates and selects the
// configured namespace/database. The returned handle is shared by all
// repositories; Close it on shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if _, err := db.SignIn(ctx, surrealdb.Auth{
		Username: cfg.DBUser,
		Password: cfg.DBPassword,
	}); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to sign in to SurrealDB: %w", err)
	}

	if err := db.Use(ctx, cfg.DBNamespace, cfg.DBName); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to select namespace/database: %w", err)
	}

	return db, nil
}

// Ping verifies the connection is still serving queries.
func Ping(ctx context.Context, db *surrealdb.DB) error {
	_, err := surrealdb.Query[int](ctx, db, "RETURN 1", nil)
	return err
}
