package di

import (
	"database/sql"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/linkbay/cms/internal/runtimeconfig"
)

// NewBunDB wraps an opened *sql.DB with the bun dialect named by the storage
// config. The caller owns driver registration and connection lifecycle.
// SQLite connections are pinned to a single open connection since the shared
// in-memory mode misbehaves with concurrent writers.
func NewBunDB(sqlDB *sql.DB, cfg runtimeconfig.StorageConfig) *bun.DB {
	if sqlDB == nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Dialect)) {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	default:
		db := bun.NewDB(sqlDB, sqlitedialect.New())
		db.SetMaxOpenConns(1)
		return db
	}
}
