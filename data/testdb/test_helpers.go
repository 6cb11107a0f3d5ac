package testdb

import (
	"context"
	"errors"
	"os"

	"github.com/Pjt727/classhours/data"
	"github.com/Pjt727/classhours/internal/projectpath"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoTestDb = errors.New("TEST_DB_CONN is not set")

// SetupTestDb applies the down then up migrations to the test database and
// returns its pool. Only TEST_DB_CONN is ever touched so a real database
// cannot be wiped here.
func SetupTestDb(ctx context.Context) (*pgxpool.Pool, error) {
	if err := data.LoadEnv(); err != nil {
		return nil, err
	}
	testDb := os.Getenv("TEST_DB_CONN")
	if testDb == "" {
		return nil, ErrNoTestDb
	}

	m, err := migrate.New("file://"+projectpath.Root+"/migrations", testDb)
	if err != nil {
		return nil, err
	}
	defer m.Close()
	// a fresh database has nothing to take down
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, err
	}
	if err := m.Up(); err != nil {
		return nil, err
	}

	return data.NewPool(ctx, true)
}
