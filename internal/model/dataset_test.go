package model_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashita-ai/agentseed/internal/model"
)

func TestRecordColumnsMatchValues(t *testing.T) {
	now := time.Now().UTC()
	records := []model.Record{
		model.User{ID: uuid.New(), Email: "a@example.com", Name: "A", CreatedAt: now},
		model.AgentAction{ID: uuid.New(), Name: "send_email", CreatedAt: now},
		model.Agent{ID: uuid.New(), Name: "Smart Code Bot", CreatedBy: uuid.New(), CreatedAt: now},
		model.AgentRun{ID: uuid.New(), Status: model.RunStatusRunning, CreatedAt: now},
		model.AgentMessage{ID: uuid.New(), CreatedAt: now},
		model.UserMessage{ID: uuid.New(), CreatedAt: now},
		model.RunAction{ID: uuid.New(), CreatedAt: now},
	}
	for _, r := range records {
		t.Run(string(r.Table()), func(t *testing.T) {
			assert.Len(t, r.Values(), len(r.Columns()))
			assert.Equal(t, "id", r.Columns()[0])
		})
	}
}

func TestTablesAreDistinct(t *testing.T) {
	seen := map[model.Table]bool{}
	for _, tbl := range model.Tables {
		assert.False(t, seen[tbl], "duplicate table %q", tbl)
		seen[tbl] = true
	}
	assert.Len(t, seen, 7)
}

func TestRunStatusValid(t *testing.T) {
	for _, s := range model.RunStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, model.RunStatus("failed").Valid())
	assert.False(t, model.RunStatusRunning.Finished())
	assert.True(t, model.RunStatusHasError.Finished())
}

func TestDatasetAppendAndRecords(t *testing.T) {
	var ds model.Dataset
	now := time.Now().UTC()
	userID := uuid.New()

	require.NoError(t, ds.Append([]model.Record{
		model.User{ID: userID, Email: "x@example.com", Name: "X", CreatedAt: now},
	}))
	require.NoError(t, ds.Append([]model.Record{
		model.UserMessage{ID: uuid.New(), UserID: userID, CreatedAt: now},
		model.UserMessage{ID: uuid.New(), UserID: userID, CreatedAt: now},
	}))

	assert.Equal(t, 1, ds.Count(model.TableUser))
	assert.Equal(t, 2, ds.Count(model.TableAgentRunUserMessage))
	assert.Len(t, ds.Records(model.TableAgentRunUserMessage), 2)
	assert.Empty(t, ds.Records(model.TableAgentRunAction))
}

type bogusRecord struct{ model.User }

func TestDatasetAppendRejectsUnknownType(t *testing.T) {
	var ds model.Dataset
	err := ds.Append([]model.Record{bogusRecord{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported record type")
}

func TestDatasetJSONKeyOrder(t *testing.T) {
	ds := model.Dataset{}
	b, err := json.Marshal(ds)
	require.NoError(t, err)

	doc := string(b)
	last := -1
	for _, tbl := range model.Tables {
		idx := strings.Index(doc, `"`+string(tbl)+`":`)
		require.GreaterOrEqual(t, idx, 0, tbl)
		assert.Greater(t, idx, last, "%s out of order", tbl)
		last = idx
	}
}

func TestRunningRunMarshalsNullUpdatedAt(t *testing.T) {
	b, err := json.Marshal(model.AgentRun{Status: model.RunStatusRunning})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"updated_at":null`)
}
