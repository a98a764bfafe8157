package cms

import "embed"

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS exposes the bundled SQL migrations so host applications
// can run them with their own migration runner.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}
