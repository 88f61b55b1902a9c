package domain

import "time"

type OrderEventType string

const (
	OrderCreated OrderEventType = "order_created"
	OrderUpdated OrderEventType = "order_updated"
	OrderDeleted OrderEventType = "order_deleted"
)

type OrderEvent struct {
	Type         OrderEventType `json:"type"`
	OrderID      int            `json:"order_id"`
	RestaurantID int            `json:"restaurant_id"`
	SessionID    string         `json:"session_id"`
	Actor        string         `json:"actor"`
	Timestamp    time.Time      `json:"timestamp"`
}

// AuditEntry is one stored OrderEvent.
type AuditEntry struct {
	ID           int64          `json:"id"`
	Type         OrderEventType `json:"type"`
	OrderID      int            `json:"order_id"`
	RestaurantID int            `json:"restaurant_id"`
	SessionID    string         `json:"session_id"`
	Actor        string         `json:"actor"`
	CreatedAt    time.Time      `json:"created_at"`
}
