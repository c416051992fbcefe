// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db on its own, no expectations set

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnsupportedDialect)
}

// TestMigrate_SQLite applies the sqlite set to an in-memory database and
// checks the resulting schema.
func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_test?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, Migrate(db, DialectSQLite))

	// second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))

	for _, table := range []string{"users", "creations"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	_, err = db.Exec(`INSERT INTO users (username, password, email, first_name, last_name, phone) VALUES ('a', 'p', 'a@x', 'A', 'B', '1')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (username, password, email, first_name, last_name, phone) VALUES ('a', 'p', 'b@x', 'A', 'B', '1')`)
	require.Error(t, err, "username must be unique")

	_, err = db.Exec(`INSERT INTO creations (theme, user_id) VALUES ('t', 999)`)
	require.Error(t, err, "owner must exist")
}
