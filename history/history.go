/*
 * history.go, part of csg.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package history keeps the commands given to csg in a sqlite database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//Kind is the type of a recorded command.
type Kind string

const (
	Formula Kind = "formula"
	Builtin Kind = "builtin"
	All     Kind = "" //only for List, to get every kind.
)

//ParseKind returns the Kind with the given name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Formula, Builtin:
		return Kind(s), nil
	}
	return All, fmt.Errorf("invalid command type: %q", s)
}

//Record is one entry of the history.
type Record struct {
	Number  int64
	Command string
	Kind    Kind
	Session string
	Time    time.Time
}

//ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("history: store is closed")

const schema = `CREATE TABLE IF NOT EXISTS history(
	number INTEGER PRIMARY KEY AUTOINCREMENT,
	command VARCHAR(32) NOT NULL,
	type VARCHAR(32) NOT NULL,
	session TEXT NOT NULL,
	created_at INTEGER NOT NULL
);`

//Store is a command history backed by a sqlite file. Each Store has its own
//session id, recorded with every command it adds. All methods but Close can be
//used concurrently.
type Store struct {
	db      *sql.DB
	session string
	path    string
}

//Open opens (creating it, and its directory, if needed) the history database at path.
//The path ":memory:" gives a history that lives only as long as the Store.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("history.Open: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history.Open: %w", err)
	}
	//sqlite doesn't like concurrent writers, and :memory: is per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history.Open: creating table: %w", err)
	}
	return &Store{db: db, session: uuid.NewString(), path: path}, nil
}

//Session returns the id recorded with the commands added through S.
func (S *Store) Session() string {
	return S.session
}

//Path returns the database file.
func (S *Store) Path() string {
	return S.path
}

//Close closes the database. Closing twice is fine.
func (S *Store) Close() error {
	if S == nil || S.db == nil {
		return nil
	}
	err := S.db.Close()
	S.db = nil
	return err
}

//Add records a command.
func (S *Store) Add(ctx context.Context, command string, kind Kind) error {
	if S.db == nil {
		return ErrClosed
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return fmt.Errorf("history.Add: %w", err)
	}
	_, err := S.db.ExecContext(ctx, "INSERT INTO history(command, type, session, created_at) VALUES(?, ?, ?, ?);",
		command, string(kind), S.session, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("history.Add: %w", err)
	}
	return nil
}

//AddFormula records a formula unless it is already in the history, and
//returns whether it was added.
func (S *Store) AddFormula(ctx context.Context, formula string) (bool, error) {
	if S.db == nil {
		return false, ErrClosed
	}
	res, err := S.db.ExecContext(ctx,
		`INSERT INTO history(command, type, session, created_at)
		SELECT ?, ?, ?, ? WHERE NOT EXISTS (SELECT 1 FROM history WHERE type = ? AND command = ?);`,
		formula, string(Formula), S.session, time.Now().UnixNano(), string(Formula), formula)
	if err != nil {
		return false, fmt.Errorf("history.AddFormula: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("history.AddFormula: %w", err)
	}
	return n > 0, nil
}

//List returns the recorded commands of the given kind (or every command, for All)
//in the order they were added.
func (S *Store) List(ctx context.Context, kind Kind) ([]Record, error) {
	if S.db == nil {
		return nil, ErrClosed
	}
	query := "SELECT number, command, type, session, created_at FROM history"
	var args []any
	if kind != All {
		query += " WHERE type = ?"
		args = append(args, string(kind))
	}
	rows, err := S.db.QueryContext(ctx, query+" ORDER BY number;", args...)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	defer rows.Close()
	var ret []Record
	for rows.Next() {
		var r Record
		var k string
		var stamp int64 //unix nanoseconds
		if err := rows.Scan(&r.Number, &r.Command, &k, &r.Session, &stamp); err != nil {
			return nil, fmt.Errorf("history.List: %w", err)
		}
		r.Kind = Kind(k)
		r.Time = time.Unix(0, stamp).UTC()
		ret = append(ret, r)
	}
	return ret, rows.Err()
}

//Formulas returns up to n distinct formulas, the most recently used first.
func (S *Store) Formulas(ctx context.Context, n int) ([]string, error) {
	if S.db == nil {
		return nil, ErrClosed
	}
	rows, err := S.db.QueryContext(ctx,
		"SELECT command FROM history WHERE type = ? GROUP BY command ORDER BY MAX(number) DESC LIMIT ?;",
		string(Formula), n)
	if err != nil {
		return nil, fmt.Errorf("history.Formulas: %w", err)
	}
	defer rows.Close()
	var ret []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("history.Formulas: %w", err)
		}
		ret = append(ret, c)
	}
	return ret, rows.Err()
}

//Clear deletes the whole history and restarts the numbering.
func (S *Store) Clear(ctx context.Context) error {
	if S.db == nil {
		return ErrClosed
	}
	tx, err := S.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history.Clear: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, "DELETE FROM history;"); err != nil {
		return fmt.Errorf("history.Clear: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = 'history';"); err != nil {
		return fmt.Errorf("history.Clear: %w", err)
	}
	return tx.Commit()
}
