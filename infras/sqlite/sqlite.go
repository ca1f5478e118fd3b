package sqlite

//nolint:revive
import (
	"errors"
	"fmt"
	"museum/config"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const (
	driverName         = "sqlite"
	busyTimeoutMillis  = 5000
	writeMaxConnection = 1
)

// Connection holds separate pools for readers and the single writer.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	conn, err := Open(config.DB.SQLite.Path, config.DB.SQLite.MaxReadConns)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.DB.SQLite.Path).Msg("Failed connecting to database")
	}

	return conn
}

// Open connects both pools to the database file at path, creating its directory when needed.
func Open(path string, maxReadConns int) (*Connection, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	write, err := connect("write", path, writeMaxConnection)
	if err != nil {
		return nil, err
	}

	read, err := connect("read", path, maxReadConns)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{
		Read:  read,
		Write: write,
	}, nil
}

// DSN builds a modernc.org/sqlite data source name with WAL and a busy timeout.
func DSN(path string) string {
	query := url.Values{}
	query.Add("_pragma", "journal_mode(WAL)")
	query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMillis))
	query.Add("_pragma", "foreign_keys(ON)")

	return "file:" + path + "?" + query.Encode()
}

func connect(name, path string, maxConns int) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driverName, DSN(path))
	if err != nil {
		log.
			Error().
			Err(err).
			Str("name", name).
			Str("path", path).
			Msg("Failed connecting to database")

		return nil, fmt.Errorf("failed to connect %s pool: %w", name, err)
	}

	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns)
	}

	log.
		Info().
		Str("name", name).
		Str("path", path).
		Int("maxConns", maxConns).
		Msg("Connected to database")

	return db, nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Write.Close(), c.Read.Close())
}
