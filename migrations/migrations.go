// Package migrations embeds the SQL schema of the store and the journal and applies it
// with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed postgres/*.sql clickhouse/*.sql
var files embed.FS

// Target selects a schema.
type Target string

const (
	Postgres   Target = "postgres"
	ClickHouse Target = "clickhouse"
)

// New opens a migrator for target against dsn.
func New(target Target, dsn string) (*migrate.Migrate, error) {
	var dbURL string
	switch target {
	case Postgres:
		dbURL = postgresURL(dsn)
	case ClickHouse:
		dbURL = withMultiStatement(dsn)
	default:
		return nil, fmt.Errorf("unknown migration target %q", target)
	}

	src, err := iofs.New(files, string(target))
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", target, err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}

// Up applies every pending migration of target. Nothing to apply is not an error.
func Up(target Target, dsn string) error {
	return run(target, dsn, (*migrate.Migrate).Up)
}

// Down reverts every migration of target.
func Down(target Target, dsn string) error {
	return run(target, dsn, (*migrate.Migrate).Down)
}

func run(target Target, dsn string, step func(*migrate.Migrate) error) (err error) {
	m, err := New(target, dsn)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", target, err)
	}
	return nil
}

// postgresURL switches a postgres DSN to the scheme of the pgx/v5 migrate driver.
func postgresURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

func withMultiStatement(dsn string) string {
	if strings.Contains(dsn, "x-multi-statement=") {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "x-multi-statement=true"
}
