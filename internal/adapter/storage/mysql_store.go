package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLStore keeps slots in a single key/blob table.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Init creates the backing table. Safe to call on every start.
func (m *MySQLStore) Init(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS pos_state (
			slot VARCHAR(64) PRIMARY KEY,
			data MEDIUMBLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create pos_state: %w", err)
	}
	return nil
}

func (m *MySQLStore) Load(ctx context.Context, slot string) ([]byte, error) {
	var data []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT data FROM pos_state WHERE slot = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query slot %s: %w", slot, err)
	}
	return data, nil
}

func (m *MySQLStore) Save(ctx context.Context, slot string, data []byte) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO pos_state (slot, data) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data)`,
		slot, data)
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", slot, err)
	}
	return nil
}
