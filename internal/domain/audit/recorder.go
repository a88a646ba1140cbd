// Package audit defines the audit-trail contract used by mutating services.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// Action represents the type of audited operation.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Recorder records audit entries for entity mutations.
// Implementations must be best-effort: a failed audit write is logged,
// never propagated to the caller.
type Recorder interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action Action, changes map[string]any)
}

// Nop is a Recorder that discards everything. Used in tests and as a
// default when auditing is disabled.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, string, id.ID, Action, map[string]any) {}

// Entry is one recorded audit event, with the change set decoded back
// to raw JSON regardless of how it was stored.
type Entry struct {
	ID         id.ID           `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   id.ID           `json:"entityId"`
	Action     Action          `json:"action"`
	UserID     string          `json:"userId,omitempty"`
	UserEmail  string          `json:"userEmail,omitempty"`
	Changes    json.RawMessage `json:"changes"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Historian reads back the recorded trail of a single entity,
// newest first.
type Historian interface {
	EntityHistory(ctx context.Context, entityType string, entityID id.ID, limit int) ([]Entry, error)
}
