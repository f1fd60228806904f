// Package testutil sobe dependências reais (PostgreSQL) para os testes de integração.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	// Driver pq para PostgreSQL
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer encapsula o container e a conexão já migrada.
type PostgresContainer struct {
	*postgres.PostgresContainer
	ConnectionString string
	DB               *sql.DB
}

// NewPostgresContainer sobe um PostgreSQL descartável e aplica as migrações de sql/.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("goloja_test"),
		postgres.WithUsername("goloja"),
		postgres.WithPassword("goloja"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, MigrationsDir()); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &PostgresContainer{
		PostgresContainer: container,
		ConnectionString:  connStr,
		DB:                db,
	}, nil
}

// Close fecha a conexão e remove o container.
func (c *PostgresContainer) Close(ctx context.Context) error {
	c.DB.Close()
	return testcontainers.TerminateContainer(c.PostgresContainer)
}

// MigrationsDir devolve o caminho absoluto de sql/ a partir deste arquivo.
func MigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "sql")
}
