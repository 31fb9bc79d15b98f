package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a root entity with no foreign keys.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) Table() Table { return TableUser }

func (User) Columns() []string {
	return []string{"id", "email", "name", "created_at"}
}

func (u User) Values() []any {
	return []any{u.ID, u.Email, u.Name, u.CreatedAt}
}

// Agent is owned by the user in CreatedBy.
type Agent struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Agent) Table() Table { return TableAgent }

func (Agent) Columns() []string {
	return []string{"id", "name", "description", "created_by", "created_at"}
}

func (a Agent) Values() []any {
	return []any{a.ID, a.Name, a.Description, a.CreatedBy, a.CreatedAt}
}

// AgentAction is a capability an agent can invoke during a run.
// Names come from a fixed catalog and are unique within a dataset.
type AgentAction struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (AgentAction) Table() Table { return TableAgentAction }

func (AgentAction) Columns() []string {
	return []string{"id", "name", "description", "created_at"}
}

func (a AgentAction) Values() []any {
	return []any{a.ID, a.Name, a.Description, a.CreatedAt}
}
