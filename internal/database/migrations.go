package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createUsersTable,
		createUploadsTable,
		createFileConfigsTable,
		createSettingsTable,
		seedDefaultSettings,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email TEXT NOT NULL UNIQUE,
  display_name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'subscriber',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  last_login_at TIMESTAMP WITH TIME ZONE
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);
`

// The UNIQUE constraint on table_name is the storage-level safeguard
// against two uploads racing to the same physical table: the second
// registry write fails instead of silently pointing two records at one
// table.
const createUploadsTable = `
CREATE TABLE IF NOT EXISTS uploads (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  original_filename TEXT NOT NULL,
  stored_filename TEXT NOT NULL,
  table_name TEXT NOT NULL UNIQUE,
  uploaded_by UUID NOT NULL REFERENCES users(id),
  upload_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_uploads_uploaded_by ON uploads(uploaded_by);
CREATE INDEX IF NOT EXISTS idx_uploads_upload_date ON uploads(upload_date);
`

const createFileConfigsTable = `
CREATE TABLE IF NOT EXISTS file_configs (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  file_id UUID NOT NULL UNIQUE REFERENCES uploads(id) ON DELETE CASCADE,
  header_row BOOLEAN NOT NULL DEFAULT TRUE,
  visible_columns TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

const seedDefaultSettings = `
INSERT INTO settings (key, value) VALUES
  ('allow_frontend_upload', 'off'),
  ('table_style', 'dark'),
  ('show_search_bar', 'on'),
  ('min_role_view', 'subscriber')
ON CONFLICT (key) DO NOTHING;
`
