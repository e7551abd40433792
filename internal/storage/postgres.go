package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore keeps documents in a single key/jsonb table so multi-host
// deployments can share state. Same full-replace contract as BadgerStore.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS itaca_documents (
			key TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure itaca_documents: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(key string) ([]byte, error) {
	const query = `SELECT doc FROM itaca_documents WHERE key=$1`
	var doc []byte
	err := s.db.QueryRow(query, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *PostgresStore) Put(key string, value []byte) error {
	const query = `
		INSERT INTO itaca_documents (key, doc) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc
	`
	_, err := s.db.Exec(query, key, value)
	return err
}

func (s *PostgresStore) Delete(key string) error {
	const query = `DELETE FROM itaca_documents WHERE key=$1`
	_, err := s.db.Exec(query, key)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
