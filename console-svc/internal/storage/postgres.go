package storage

import (
	"context"
	"database/sql"
	"fmt"

	"overcooked-console/console-svc/internal/domain"
)

// AuditRepository keeps every acknowledged order mutation made through the
// console.
type AuditRepository struct {
	DB *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS console_audit (
			id SERIAL PRIMARY KEY,
			event_type VARCHAR(32) NOT NULL,
			order_id INT NOT NULL,
			restaurant_id INT NOT NULL,
			session_id VARCHAR(64) NOT NULL,
			actor VARCHAR(128) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create audit table: %w", err)
	}
	return nil
}

func (r *AuditRepository) OnOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	_, err := r.Record(ctx, event)
	return err
}

func (r *AuditRepository) Record(ctx context.Context, event domain.OrderEvent) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO console_audit (event_type, order_id, restaurant_id, session_id, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, string(event.Type), event.OrderID, event.RestaurantID, event.SessionID, event.Actor, event.Timestamp).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to record audit entry: %w", err)
	}
	return id, nil
}

// ListRecent returns the newest entries first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, event_type, order_id, restaurant_id, session_id, actor, created_at
		FROM console_audit
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var e domain.AuditEntry
		var eventType string
		if err := rows.Scan(&e.ID, &eventType, &e.OrderID, &e.RestaurantID, &e.SessionID, &e.Actor, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Type = domain.OrderEventType(eventType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
