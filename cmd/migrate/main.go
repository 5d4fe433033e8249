package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type migration struct {
	version string
	up      string
	down    string
}

// loadMigrations pairs NNNN_name.up.sql with NNNN_name.down.sql, sorted by version.
func loadMigrations() ([]migration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}

	byVersion := map[string]*migration{}
	for _, e := range entries {
		name := e.Name()
		var version, dir string
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			version, dir = strings.TrimSuffix(name, ".up.sql"), "up"
		case strings.HasSuffix(name, ".down.sql"):
			version, dir = strings.TrimSuffix(name, ".down.sql"), "down"
		default:
			continue
		}

		body, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return nil, err
		}
		m, ok := byVersion[version]
		if !ok {
			m = &migration{version: version}
			byVersion[version] = m
		}
		if dir == "up" {
			m.up = string(body)
		} else {
			m.down = string(body)
		}
	}

	out := make([]migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.up == "" {
			return nil, fmt.Errorf("migration %s has no up file", m.version)
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

func applied(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	done := map[string]bool{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		done[v] = true
	}
	return done, rows.Err()
}

func run(ctx context.Context, db *sql.DB, m migration, script, record string, args ...any) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("migration %s: %w", m.version, err)
	}
	if _, err := tx.ExecContext(ctx, record, args...); err != nil {
		return fmt.Errorf("record migration %s: %w", m.version, err)
	}
	return tx.Commit()
}

// fail logs postgres error details when the driver provides them.
func fail(logger *zap.SugaredLogger, err error) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		logger.Fatalw("migration failed", "error", err, "code", pqErr.Code, "detail", pqErr.Detail, "constraint", pqErr.Constraint)
	}
	logger.Fatal(err)
}

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded, using process environment:", err)
	}

	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	addr := os.Getenv("DB_ADDR")
	if addr == "" {
		logger.Fatal("DB_ADDR is required")
	}

	db, err := sql.Open("postgres", addr)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal(err)
	}

	migrations, err := loadMigrations()
	if err != nil {
		logger.Fatal(err)
	}
	done, err := applied(ctx, db)
	if err != nil {
		logger.Fatal(err)
	}

	if *down {
		for i := len(migrations) - 1; i >= 0; i-- {
			m := migrations[i]
			if !done[m.version] {
				continue
			}
			if m.down == "" {
				logger.Fatalf("migration %s has no down file", m.version)
			}
			if err := run(ctx, db, m, m.down, `DELETE FROM schema_migrations WHERE version = $1`, m.version); err != nil {
				fail(logger, err)
			}
			logger.Infow("rolled back", "version", m.version)
			return
		}
		logger.Info("nothing to roll back")
		return
	}

	count := 0
	for _, m := range migrations {
		if done[m.version] {
			continue
		}
		if err := run(ctx, db, m, m.up, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
			fail(logger, err)
		}
		logger.Infow("applied", "version", m.version)
		count++
	}
	logger.Infow("migrations up to date", "applied", count, "total", len(migrations))
}
