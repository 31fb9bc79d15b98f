package model

import "fmt"

// Table is a destination table name.
type Table string

const (
	TableUser                Table = "user"
	TableAgentAction         Table = "agent_action"
	TableAgent               Table = "agent"
	TableAgentRun            Table = "agent_run"
	TableAgentRunMessage     Table = "agent_run_message"
	TableAgentRunUserMessage Table = "agent_run_user_message"
	TableAgentRunAction      Table = "agent_run_action"
)

// Tables lists every table in dependency order: parents before children.
var Tables = []Table{
	TableUser,
	TableAgentAction,
	TableAgent,
	TableAgentRun,
	TableAgentRunMessage,
	TableAgentRunUserMessage,
	TableAgentRunAction,
}

// Record is a single row destined for one table.
// Columns and Values are parallel slices in destination column order.
type Record interface {
	Table() Table
	Columns() []string
	Values() []any
}

// Dataset is the full output of one generation pass.
// JSON keys are table names; field order matches dependency order so the
// exported document lists parents first.
type Dataset struct {
	Users        []User         `json:"user"`
	AgentActions []AgentAction  `json:"agent_action"`
	Agents       []Agent        `json:"agent"`
	Runs         []AgentRun     `json:"agent_run"`
	Messages     []AgentMessage `json:"agent_run_message"`
	UserMessages []UserMessage  `json:"agent_run_user_message"`
	RunActions   []RunAction    `json:"agent_run_action"`
}

// Records returns the rows for table t in generation order.
func (d *Dataset) Records(t Table) []Record {
	switch t {
	case TableUser:
		return toRecords(d.Users)
	case TableAgentAction:
		return toRecords(d.AgentActions)
	case TableAgent:
		return toRecords(d.Agents)
	case TableAgentRun:
		return toRecords(d.Runs)
	case TableAgentRunMessage:
		return toRecords(d.Messages)
	case TableAgentRunUserMessage:
		return toRecords(d.UserMessages)
	case TableAgentRunAction:
		return toRecords(d.RunActions)
	default:
		return nil
	}
}

// Count returns the number of rows held for table t.
func (d *Dataset) Count(t Table) int {
	switch t {
	case TableUser:
		return len(d.Users)
	case TableAgentAction:
		return len(d.AgentActions)
	case TableAgent:
		return len(d.Agents)
	case TableAgentRun:
		return len(d.Runs)
	case TableAgentRunMessage:
		return len(d.Messages)
	case TableAgentRunUserMessage:
		return len(d.UserMessages)
	case TableAgentRunAction:
		return len(d.RunActions)
	default:
		return 0
	}
}

// Append adds records to the slice for their table. Every record must belong
// to the same table and be of that table's concrete type.
func (d *Dataset) Append(records []Record) error {
	for _, r := range records {
		switch v := r.(type) {
		case User:
			d.Users = append(d.Users, v)
		case AgentAction:
			d.AgentActions = append(d.AgentActions, v)
		case Agent:
			d.Agents = append(d.Agents, v)
		case AgentRun:
			d.Runs = append(d.Runs, v)
		case AgentMessage:
			d.Messages = append(d.Messages, v)
		case UserMessage:
			d.UserMessages = append(d.UserMessages, v)
		case RunAction:
			d.RunActions = append(d.RunActions, v)
		default:
			return fmt.Errorf("model: unsupported record type %T", r)
		}
	}
	return nil
}

func toRecords[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
