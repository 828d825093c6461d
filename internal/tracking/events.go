package tracking

import (
	"time"

	"github.com/lucsky/cuid"
)

// DashboardEvent is a lightweight usage-tracking record: page views, query
// requests, exports, admin actions. Events are best-effort; losing one
// never affects a response.
type DashboardEvent struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	UserID    string            `json:"user_id,omitempty"`
	Path      string            `json:"path,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

func NewEvent(eventType, userID, path string) DashboardEvent {
	return DashboardEvent{
		ID:        cuid.New(),
		Type:      eventType,
		UserID:    userID,
		Path:      path,
		Timestamp: time.Now().Unix(),
	}
}
