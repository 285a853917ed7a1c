package testing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const pgImage = "postgres:17.5"

type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

type PGConfig struct {
	Database string
	Username string
	Password string
}

func DefaultPGConfig() PGConfig {
	return PGConfig{
		Database: "calcfin_test_db",
		Username: "test",
		Password: "test",
	}
}

// NewPGContainer starts PostgreSQL with every db/migrations/*.up.sql applied.
func NewPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	script, err := writeInitScript()
	if err != nil {
		return nil, err
	}
	defer os.Remove(script)

	c, err := postgres.Run(ctx,
		pgImage,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		postgres.WithInitScripts(script),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(c)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PGContainer{Container: c, ConnString: connStr}, nil
}

func NewPGContainerWithCleanup(ctx context.Context, tb testing.TB) *PGContainer {
	tb.Helper()

	c, err := NewPGContainer(ctx, DefaultPGConfig())
	if err != nil {
		tb.Fatalf("failed to create postgres container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c.Container); err != nil {
			tb.Logf("failed to terminate postgres container: %v", err)
		}
	})
	return c
}

// writeInitScript concatenates the up migrations, in order, into one temp file.
func writeInitScript() (string, error) {
	_, self, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(self), "..", "..", "db", "migrations")

	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return "", fmt.Errorf("failed to find migration files: %w", err)
	}
	sort.Strings(files)

	parts := make([]string, 0, len(files))
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return "", fmt.Errorf("failed to read migration file %s: %w", f, err)
		}
		parts = append(parts, strings.TrimRight(string(content), "; \n")+";")
	}

	tmp, err := os.CreateTemp("", "calcfin-migrations-*.sql")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := tmp.WriteString(strings.Join(parts, "\n\n")); err != nil {
		return "", fmt.Errorf("failed to write migrations: %w", err)
	}
	return tmp.Name(), nil
}
