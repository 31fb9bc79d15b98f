// Package model defines the seed dataset types.
//
// Every type corresponds directly to a destination table. Relationships are
// expressed as copied identifier values; no record holds another by reference.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus represents the lifecycle state of an agent run.
type RunStatus string

const (
	RunStatusCompleted  RunStatus = "completed"
	RunStatusHasError   RunStatus = "has_error"
	RunStatusTookAction RunStatus = "took_action"
	RunStatusRunning    RunStatus = "running"
)

// RunStatuses lists every valid status.
var RunStatuses = []RunStatus{
	RunStatusCompleted,
	RunStatusHasError,
	RunStatusTookAction,
	RunStatusRunning,
}

// Valid reports whether s is one of the known statuses.
func (s RunStatus) Valid() bool {
	for _, v := range RunStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Finished reports whether a run in this status carries a completion timestamp.
func (s RunStatus) Finished() bool {
	return s != RunStatusRunning
}

// AgentRun is one execution of an agent on behalf of a user.
// UpdatedAt is nil while the run is still running.
type AgentRun struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	AgentID   uuid.UUID  `json:"agent_id"`
	Status    RunStatus  `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (AgentRun) Table() Table { return TableAgentRun }

func (AgentRun) Columns() []string {
	return []string{"id", "user_id", "agent_id", "status", "created_at", "updated_at"}
}

func (r AgentRun) Values() []any {
	return []any{r.ID, r.UserID, r.AgentID, string(r.Status), r.CreatedAt, r.UpdatedAt}
}
