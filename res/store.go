// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package res implements the results catalog: an SQLite database recording
// every analysed test with its properties and warnings
package res

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lucasguesserts/mechanical-testing/tensile"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	datafile   TEXT NOT NULL,
	created_at TEXT NOT NULL,
	warnings   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS properties (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id   TEXT NOT NULL,
	property TEXT NOT NULL,
	value    REAL NOT NULL,
	unit     TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// Store keeps analysed tests in an SQLite results catalog
type Store struct {
	db *sql.DB
}

// Run holds one catalog entry
type Run struct {
	ID        string   // unique run identifier
	Name      string   // test name
	DataFile  string   // data file analysed
	CreatedAt string   // RFC3339 timestamp
	Warnings  []string // diagnostic warnings of the analysis
}

// Open opens the catalog at the given path, creating the database, its parent
// directory and the tables if needed
func Open(path string) (o *Store, err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, chk.Err("cannot create catalog directory for %q: %v", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, chk.Err("cannot open catalog %q: %v", path, err)
	}
	for _, cmd := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON", schema} {
		if _, err = db.Exec(cmd); err != nil {
			db.Close()
			return nil, chk.Err("cannot initialise catalog %q: %v", path, err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the catalog
func (o *Store) Close() error {
	return o.db.Close()
}

// AddRun records one analysed test: one runs row plus one properties row per
// (name, value, unit) triple. Returns the new run identifier.
func (o *Store) AddRun(t *tensile.Test, datafile string) (id string, err error) {
	id = uuid.New().String()
	warnings := t.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	wjson, err := json.Marshal(warnings)
	if err != nil {
		return "", chk.Err("cannot encode warnings of test %q: %v", t.Name, err)
	}
	tx, err := o.db.Begin()
	if err != nil {
		return "", chk.Err("cannot begin catalog transaction: %v", err)
	}
	defer tx.Rollback()
	_, err = tx.Exec(
		`INSERT INTO runs (run_id, name, datafile, created_at, warnings) VALUES (?, ?, ?, ?, ?)`,
		id, t.Name, datafile, time.Now().UTC().Format(time.RFC3339Nano), string(wjson),
	)
	if err != nil {
		return "", chk.Err("cannot record run of test %q: %v", t.Name, err)
	}
	for _, p := range t.Properties() {
		_, err = tx.Exec(
			`INSERT INTO properties (run_id, property, value, unit) VALUES (?, ?, ?, ?)`,
			id, p.N, p.V, p.U,
		)
		if err != nil {
			return "", chk.Err("cannot record property %q of test %q: %v", p.N, t.Name, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return "", chk.Err("cannot commit run of test %q: %v", t.Name, err)
	}
	return id, nil
}

// Runs lists all catalog entries, most recent first
func (o *Store) Runs() (runs []*Run, err error) {
	rows, err := o.db.Query(`SELECT run_id, name, datafile, created_at, warnings FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, chk.Err("cannot query runs: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		r := new(Run)
		var wjson string
		if err = rows.Scan(&r.ID, &r.Name, &r.DataFile, &r.CreatedAt, &wjson); err != nil {
			return nil, chk.Err("cannot scan run: %v", err)
		}
		if err = json.Unmarshal([]byte(wjson), &r.Warnings); err != nil {
			return nil, chk.Err("cannot decode warnings of run %q: %v", r.ID, err)
		}
		runs = append(runs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, chk.Err("cannot list runs: %v", err)
	}
	return
}

// RunProperties returns the (name, value, unit) rows of one run in insertion
// order
func (o *Store) RunProperties(id string) (props []*tensile.Property, err error) {
	rows, err := o.db.Query(`SELECT property, value, unit FROM properties WHERE run_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, chk.Err("cannot query properties of run %q: %v", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		p := new(tensile.Property)
		if err = rows.Scan(&p.N, &p.V, &p.U); err != nil {
			return nil, chk.Err("cannot scan property of run %q: %v", id, err)
		}
		props = append(props, p)
	}
	if err = rows.Err(); err != nil {
		return nil, chk.Err("cannot list properties of run %q: %v", id, err)
	}
	return
}
