package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresEntryStore persists the archive in PostgreSQL. Entries are
// append-only; nothing updates or deletes them.
type PostgresEntryStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed entry archive.
func NewPostgres(db *sql.DB) *PostgresEntryStore {
	return &PostgresEntryStore{db: db}
}

// EnsureSchema creates the archive table when absent.
func (s *PostgresEntryStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS ledger_entries (
			seq        BIGINT PRIMARY KEY,
			tx_ref     CHAR(66) NOT NULL UNIQUE,
			op         TEXT NOT NULL,
			payload    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure ledger_entries schema: %w", err)
	}
	return nil
}

func (s *PostgresEntryStore) Append(ctx context.Context, entry Entry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("marshal entry payload: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledger_entries (seq, tx_ref, op, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		int64(entry.Seq), string(entry.Ref), entry.Op, payload, entry.At)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

func (s *PostgresEntryStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, tx_ref, op, payload, created_at
		FROM ledger_entries
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry   Entry
			seq     int64
			ref     string
			payload []byte
		)
		if err := rows.Scan(&seq, &ref, &entry.Op, &payload, &entry.At); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entry.Seq = uint64(seq)
		entry.Ref = TxRef(ref)
		if err := json.Unmarshal(payload, &entry.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal entry payload: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
