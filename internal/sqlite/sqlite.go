// Package sqlite opens the application database and applies the schema.
package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	_ "embed"
)

//go:embed schema.sql
var schemaDefinition string

// Database bundles the read-write and read-only connection pools.
//
// SQLite performs best with a single writer connection and a pool of
// read-only connections, see
// https://github.com/mattn/go-sqlite3/issues/1179#issuecomment-1638083995
type Database struct {
	ReadWrite *sql.DB
	ReadOnly  *sql.DB
	logger    *slog.Logger
}

// NewDatabase connects to a database and applies the schema.
//
// The url parameter is the path to the SQLite database file or ":memory:"
// for an ephemeral in-memory database.
func NewDatabase(ctx context.Context, url string, logger *slog.Logger) (*Database, error) {
	db, err := connect(ctx, url, logger)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if _, err = db.ReadWrite.ExecContext(ctx, schemaDefinition); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}

//nolint:gochecknoglobals // once ensures that the SQLite driver is registered only once.
var once sync.Once

const optimizedDriver = "sqlite3optimized"

// registerOptimizedDriver registers a driver that executes performance-enhancing
// pragmas on connection.
func registerOptimizedDriver() {
	sql.Register(optimizedDriver,
		&sqlite3.SQLiteDriver{
			Extensions: nil,
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				if _, err := conn.Exec(
					// Store temporary tables and indices in memory instead of files.
					"PRAGMA temp_store = memory;"+
						// Reduce syscalls by having the pages in memory-mapped I/O.
						"PRAGMA mmap_size = 30000000000;", nil); err != nil {
					return fmt.Errorf("exec optimization pragmas: %w", err)
				}
				return nil
			},
		})
}

func connect(ctx context.Context, url string, logger *slog.Logger) (*Database, error) {
	var (
		err         error
		readWriteDB *sql.DB
		readDB      *sql.DB
	)

	// For in-memory databases we need shared cache mode so that both pools see
	// the same data. Parallel tests each get a unique database name to avoid
	// sharing data, see https://www.sqlite.org/inmemorydb.html.
	isInMemory := strings.Contains(url, ":memory:")
	inMemoryConfig := ""
	if isInMemory {
		url = fmt.Sprintf("file:%s", rand.Text())
		inMemoryConfig = "mode=memory&cache=shared"
	}
	commonConfig := strings.Join([]string{
		// Uses current time.Location for timestamps.
		"_loc=auto",
		// Write-ahead logging enables higher performance and concurrent readers.
		"_journal_mode=wal",
		// Avoids SQLITE_BUSY errors when the database is under load.
		"_busy_timeout=5000",
		// Increases performance at the cost of durability.
		"_synchronous=normal",
		// Enables foreign key constraints.
		"_foreign_keys=on",
	}, "&")

	readConfig := fmt.Sprintf("file:%s?mode=ro&_txlock=deferred&_query_only=true&%s&%s", url, commonConfig, inMemoryConfig)
	readWriteConfig := fmt.Sprintf("file:%s?mode=rwc&_txlock=immediate&%s&%s", url, commonConfig, inMemoryConfig)

	once.Do(registerOptimizedDriver)

	if readWriteDB, err = sql.Open(optimizedDriver, readWriteConfig); err != nil {
		return nil, fmt.Errorf("open read-write database: %w", err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "opened database", slog.String("sqlDsn", readWriteConfig))

	readWriteDB.SetMaxOpenConns(1)
	readWriteDB.SetMaxIdleConns(1)
	readWriteDB.SetConnMaxLifetime(time.Hour)
	readWriteDB.SetConnMaxIdleTime(time.Hour)

	// sql.DB is lazy, so ping to ensure the connection is established and configured.
	if err = readWriteDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping read-write database: %w", err)
	}

	if readDB, err = sql.Open(optimizedDriver, readConfig); err != nil {
		return nil, fmt.Errorf("open read database: %w", err)
	}

	maxReadConns := 10
	readDB.SetMaxOpenConns(maxReadConns)
	readDB.SetMaxIdleConns(maxReadConns)
	readDB.SetConnMaxLifetime(time.Hour)
	readDB.SetConnMaxIdleTime(time.Hour)

	return &Database{
		ReadWrite: readWriteDB,
		ReadOnly:  readDB,
		logger:    logger,
	}, nil
}

// Optimize runs the SQLite query-planner maintenance pragma. Intended to be
// invoked periodically, e.g. from a nightly job.
func (db *Database) Optimize(ctx context.Context) error {
	if _, err := db.ReadWrite.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
		return fmt.Errorf("pragma optimize: %w", err)
	}
	return nil
}

// Close closes the database connections.
func (db *Database) Close() error {
	return errors.Join(db.ReadOnly.Close(), db.ReadWrite.Close())
}
