package data

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Pjt727/classhours/internal/projectpath"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	dbPool     *pgxpool.Pool
	dbPoolErr  error
	pgOnce     sync.Once
	testPool   *pgxpool.Pool
	testErr    error
	testPgOnce sync.Once
)

var ErrNoConnString = errors.New("database connection string is not set")

// LoadEnv reads the .env file at the root of the project if there is one,
// variables that are already set win
func LoadEnv() error {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// NewPool returns the shared pool of DB_CONN or TEST_DB_CONN when isTest
func NewPool(ctx context.Context, isTest bool) (*pgxpool.Pool, error) {
	if isTest {
		testPgOnce.Do(func() {
			testPool, testErr = connect(ctx, "TEST_DB_CONN")
		})
		return testPool, testErr
	}
	pgOnce.Do(func() {
		dbPool, dbPoolErr = connect(ctx, "DB_CONN")
	})
	return dbPool, dbPoolErr
}

func connect(ctx context.Context, envKey string) (*pgxpool.Pool, error) {
	connString := os.Getenv(envKey)
	if connString == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoConnString, envKey)
	}
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		log.Error(fmt.Errorf("Unable to create connection pool: %w", err))
		return nil, err
	}
	return pool, nil
}
