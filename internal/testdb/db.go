// Package testdb spins up a disposable PostgreSQL container for integration
// tests. Tests using it skip automatically when Docker is unavailable.
package testdb

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/calorix/backend/config"
	"github.com/calorix/backend/internal/database"
)

// TestDB wraps a containerized test database instance
type TestDB struct {
	DB        *gorm.DB
	Config    *config.Config
	Container testcontainers.Container
}

// Close terminates the backing container
func (td *TestDB) Close() error {
	if td.Container != nil {
		return td.Container.Terminate(context.Background())
	}
	return nil
}

// SkipIfDockerUnavailable skips the test unless a Docker daemon is reachable.
func SkipIfDockerUnavailable(t *testing.T) {
	t.Helper()

	sock := os.Getenv("DOCKER_HOST")
	if sock == "" {
		sock = "unix:///var/run/docker.sock"
	}
	if len(sock) > 7 && sock[:7] == "unix://" {
		conn, err := net.DialTimeout("unix", sock[7:], time.Second)
		if err != nil {
			t.Skipf("docker unavailable: %v", err)
		}
		_ = conn.Close()
	}
}

// SetupTestDB starts a PostgreSQL container, connects to it and applies the
// full schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	SkipIfDockerUnavailable(t)

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

	cfg := &config.Config{
		DBHost:             host,
		DBPort:             port.Port(),
		DBUser:             "test",
		DBPassword:         "test",
		DBName:             "test",
		DBSSLMode:          "disable",
		JWTSecret:          "test-secret",
		RateLimitPerMinute: 120,
	}

	db, err := database.New(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	testDB := &TestDB{
		DB:        db,
		Config:    cfg,
		Container: container,
	}

	t.Cleanup(func() {
		if err := testDB.Close(); err != nil {
			t.Logf("error cleaning up test database: %v", err)
		}
	})

	return testDB
}
