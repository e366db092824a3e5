package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestDB represents a test database connection
type TestDB struct {
	Pool *pgxpool.Pool
}

// NewTestDB connects to the database named by TEST_DATABASE_URL. Tests that
// need Postgres are skipped when the variable is unset.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err, "Failed to connect to test database")

	err = pool.Ping(ctx)
	require.NoError(t, err, "Failed to ping test database")

	return &TestDB{Pool: pool}
}

// Setup initializes the test database with the required tables
func (db *TestDB) Setup(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS hero_slide (
			id UUID PRIMARY KEY,
			img TEXT NOT NULL,
			alt TEXT NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
		`CREATE TABLE IF NOT EXISTS achievement (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			slug TEXT NOT NULL,
			story TEXT NOT NULL DEFAULT '',
			photo TEXT NOT NULL,
			published_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS achievement_slug_idx ON achievement (slug)`,
		`CREATE TABLE IF NOT EXISTS collaborator (
			id UUID PRIMARY KEY,
			logo TEXT NOT NULL,
			name TEXT NOT NULL,
			office TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
		`CREATE TABLE IF NOT EXISTS team_member (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			position TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			profile TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL,
			role VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
		`CREATE INDEX IF NOT EXISTS team_member_role_idx ON team_member (role)`,
		`CREATE TABLE IF NOT EXISTS event (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			date TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			note TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
		`CREATE TABLE IF NOT EXISTS statement (
			id UUID PRIMARY KEY,
			type VARCHAR(20) NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			"values" TEXT[],
			created_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
		`CREATE TABLE IF NOT EXISTS testimonial (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
		`CREATE TABLE IF NOT EXISTS achievement_stats (
			id UUID PRIMARY KEY,
			national_champions INT NOT NULL DEFAULT 0,
			international_recognition INT NOT NULL DEFAULT 0,
			student_winners INT NOT NULL DEFAULT 0,
			university_awards INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
	}

	for _, stmt := range statements {
		_, err := db.Pool.Exec(ctx, stmt)
		require.NoError(t, err, "Failed to run schema statement")
	}
}

// Teardown drops the test tables
func (db *TestDB) Teardown(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"hero_slide", "achievement", "collaborator", "team_member",
		"event", "statement", "testimonial", "achievement_stats",
	}
	for _, table := range tables {
		_, err := db.Pool.Exec(ctx, "DROP TABLE IF EXISTS "+table)
		require.NoError(t, err, "Failed to drop table")
	}
	db.Pool.Close()
}
