// Package testdb spins up a throwaway Postgres container for tests that
// need the real row store dialect. The default test suite runs on in-memory
// SQLite; set ATELIER_TEST_POSTGRES=1 to exercise these paths.
package testdb

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/database"
)

// TestDB wraps a test database instance
type TestDB struct {
	DB        *gorm.DB
	Container testcontainers.Container
}

// Close cleans up the test database
func (td *TestDB) Close() error {
	if td.Container != nil {
		return td.Container.Terminate(context.Background())
	}
	return nil
}

// Setup creates a Postgres-backed test database, or skips the test when
// container tests are not enabled.
func Setup(t *testing.T) *TestDB {
	if os.Getenv("ATELIER_TEST_POSTGRES") == "" {
		t.Skip("set ATELIER_TEST_POSTGRES=1 to run Postgres container tests")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections"),
			wait.ForListeningPort("5432/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))

	return &TestDB{DB: db, Container: container}
}
