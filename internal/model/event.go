package model

import (
	"time"

	"github.com/google/uuid"
)

// AgentMessage is a message written by an agent during a run.
type AgentMessage struct {
	ID         uuid.UUID `json:"id"`
	AgentRunID uuid.UUID `json:"agent_run_id"`
	AgentID    uuid.UUID `json:"agent_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AgentMessage) Table() Table { return TableAgentRunMessage }

func (AgentMessage) Columns() []string {
	return []string{"id", "agent_run_id", "agent_id", "content", "created_at"}
}

func (m AgentMessage) Values() []any {
	return []any{m.ID, m.AgentRunID, m.AgentID, m.Content, m.CreatedAt}
}

// UserMessage is a message written by the run's own user.
type UserMessage struct {
	ID         uuid.UUID `json:"id"`
	AgentRunID uuid.UUID `json:"agent_run_id"`
	UserID     uuid.UUID `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (UserMessage) Table() Table { return TableAgentRunUserMessage }

func (UserMessage) Columns() []string {
	return []string{"id", "agent_run_id", "user_id", "content", "created_at"}
}

func (m UserMessage) Values() []any {
	return []any{m.ID, m.AgentRunID, m.UserID, m.Content, m.CreatedAt}
}

// RunAction records an agent invoking an action within a run.
type RunAction struct {
	ID            uuid.UUID `json:"id"`
	AgentRunID    uuid.UUID `json:"agent_run_id"`
	AgentID       uuid.UUID `json:"agent_id"`
	AgentActionID uuid.UUID `json:"agent_action_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (RunAction) Table() Table { return TableAgentRunAction }

func (RunAction) Columns() []string {
	return []string{"id", "agent_run_id", "agent_id", "agent_action_id", "created_at"}
}

func (a RunAction) Values() []any {
	return []any{a.ID, a.AgentRunID, a.AgentID, a.AgentActionID, a.CreatedAt}
}
