// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

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

func TestMigrate_UnknownDialect(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle")
	if err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}

	if !strings.Contains(err.Error(), "unknown dialect") {
		t.Errorf("expected 'unknown dialect' error, got: %v", err)
	}
}

func TestMigrate_SQLiteUp(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if err = Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	// table must exist and accept a row shaped like the model
	_, err = db.Exec(`INSERT INTO users (name, email, age, password_hash) VALUES ('Ann', 'ann@x.com', 30, 'hash')`)
	if err != nil {
		t.Fatalf("users table not usable after migration: %v", err)
	}
}
