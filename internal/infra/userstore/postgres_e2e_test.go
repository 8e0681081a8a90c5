//go:build e2e

package userstore_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"stash-backend/internal/infra/userstore"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

type PostgresStoreSuite struct {
	suite.Suite
	container testcontainers.Container
	pool      *pgxpool.Pool
	store     *userstore.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{
			"/var/lib/postgresql/data": "rw,size=256m",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
				pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(s.T(), err)
	s.container = container

	host, err := container.Host(ctx)
	require.NoError(s.T(), err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(s.T(), err)

	// Dedicated database per run so parallel suites never collide
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		pgUser, pgPassword, host, port.Port())
	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(s.T(), err)
	defer adminPool.Close()
	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(s.T(), err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, host, port.Port(), dbName)
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(s.T(), err)
	s.pool = pool

	store, err := userstore.NewPostgresStore(ctx, pool)
	require.NoError(s.T(), err)
	s.store = store
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.container.Terminate(ctx)
	}
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE user_records")
	require.NoError(s.T(), err)
}

func (s *PostgresStoreSuite) TestLoadUnknownUserReturnsDefaults() {
	record, err := s.store.Load(context.Background(), "user_unknown")
	s.Require().NoError(err)

	s.Empty(record.Receipts)
	s.Equal(1, record.Gamification.Level)
	s.Equal("INR", record.Preferences.Currency)
}

func (s *PostgresStoreSuite) TestSaveThenLoadRoundTrip() {
	ctx := context.Background()

	record := userstore.NewRecord()
	record.AddReceipt(userstore.StoredReceipt{
		ID: "r1", Merchant: "Target", Amount: 87.23, Date: "2025-06-10", Category: "Shopping",
	})
	record.AddPoints(50)

	s.Require().NoError(s.store.Save(ctx, "user_1", record))

	loaded, err := s.store.Load(ctx, "user_1")
	s.Require().NoError(err)
	s.Require().Len(loaded.Receipts, 1)
	s.Equal("Target", loaded.Receipts[0].Merchant)
	s.Equal(50, loaded.Gamification.Points)
	s.InDelta(87.23, loaded.Spending.TotalSpent, 0.001)
}

func (s *PostgresStoreSuite) TestSaveOverwritesExistingDocument() {
	ctx := context.Background()

	first := userstore.NewRecord()
	first.AddPoints(10)
	s.Require().NoError(s.store.Save(ctx, "user_1", first))

	second := userstore.NewRecord()
	second.AddPoints(999)
	s.Require().NoError(s.store.Save(ctx, "user_1", second))

	loaded, err := s.store.Load(ctx, "user_1")
	s.Require().NoError(err)
	s.Equal(999, loaded.Gamification.Points)
}

func (s *PostgresStoreSuite) TestCorruptDocumentFallsBackToDefaults() {
	ctx := context.Background()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_records (user_id, data) VALUES ($1, $2)`,
		"user_corrupt", []byte(`"not an object"`))
	s.Require().NoError(err)

	record, loadErr := s.store.Load(ctx, "user_corrupt")
	s.Require().NoError(loadErr)
	s.Equal(1, record.Gamification.Level)
}
