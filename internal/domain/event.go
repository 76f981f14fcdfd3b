package domain

import "time"

// StreamPropertyChanges - Redis stream с лентой изменений объявлений
const StreamPropertyChanges = "stream:property:changes"

// PropertyEventType - тип изменения в store
type PropertyEventType string

const (
	PropertyCreated PropertyEventType = "created"
	PropertyUpdated PropertyEventType = "updated"
	PropertyDeleted PropertyEventType = "deleted"
)

// PropertyEvent - уведомление store о мутации. Property - снимок после
// изменения (для deleted - последнее состояние перед удалением).
type PropertyEvent struct {
	Type       PropertyEventType `json:"type"`
	PropertyID string            `json:"property_id"`
	Property   *Property         `json:"property,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
