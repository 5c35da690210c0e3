//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"coupon-ledger/cmd/bootstrap"
	"coupon-ledger/internal/infra/db"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/tests/common/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	schemaFile = "migrations/001_initial_schema.sql"
)

var (
	postgresOnce sync.Once
	postgresAddr string
	postgresErr  error
)

// SharedSuite boots one Postgres database, one miniredis, and the production fx graph
// per suite. Subtests start from empty tables and an empty Redis.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *miniredis.Miniredis
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := startPostgres(t)
	dbConfig := createDatabase(t, host, port)

	pool, cleanup, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)
	require.NoError(t, applySchema(context.Background(), pool), "schema migration failed")

	// the OTP store and the redeemed marker run their real Redis code paths
	s.Redis = miniredis.RunT(t)

	s.Config = config.NewTestConfig()
	s.Config.Store.Driver = config.StoreDriverPostgres
	s.Config.DB = dbConfig
	s.Config.Redis.URL = "redis://" + s.Redis.Addr()

	s.DB = pool
	s.Router = startApp(t, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	s.Redis.FlushAll()
}

// startPostgres runs one container per test process. Ryuk reaps it when the process exits.
func startPostgres(t *testing.T) (string, nat.Port) {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var c testcontainers.Container
		c, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// throwaway data, so durability is traded for speed
				Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "max_connections=200"},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "coupon-ledger-e2e"},
			},
			Started: true,
		})
		if postgresErr != nil {
			return
		}

		var host string
		var port nat.Port
		if host, postgresErr = c.Host(ctx); postgresErr != nil {
			return
		}
		if port, postgresErr = c.MappedPort(ctx, "5432/tcp"); postgresErr != nil {
			return
		}
		postgresAddr = host + ":" + port.Port()
	})
	require.NoError(t, postgresErr, "failed to start postgres container")

	host, port, _ := strings.Cut(postgresAddr, ":")
	return host, nat.Port(port)
}

// createDatabase gives each suite its own database on the shared container.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	t.Helper()

	name := "coupons_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// applySchema walks up from the package directory to the module root to find the schema.
func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return fmt.Errorf("module root not found")
		}
		dir = parent
	}

	sql, err := os.ReadFile(filepath.Join(dir, schemaFile))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", schemaFile, err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("failed to apply %s: %w", schemaFile, err)
	}
	return nil
}

// startApp builds the same graph as cmd/main.go and returns the router it registered.
func startApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		bootstrap.New(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	require.NotNil(t, router, "fx application did not provide a router")
	return router
}
