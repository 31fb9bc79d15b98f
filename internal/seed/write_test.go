package seed

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashita-ai/agentseed/internal/model"
	"github.com/ashita-ai/agentseed/internal/sink"
)

type call struct {
	table model.Table
	rows  int
}

// recordingSink logs every Write call in arrival order.
type recordingSink struct {
	mu     sync.Mutex
	calls  []call
	failOn model.Table
}

func (r *recordingSink) Write(_ context.Context, table model.Table, records []model.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if table == r.failOn {
		return errors.New("boom")
	}
	r.calls = append(r.calls, call{table: table, rows: len(records)})
	return nil
}

func generateDefault(t *testing.T) *model.Dataset {
	t.Helper()
	g, _ := newTestGenerator(t, DefaultConfig())
	ds, err := g.Generate()
	require.NoError(t, err)
	return ds
}

func tableRank(t model.Table) int {
	for i, tbl := range model.Tables {
		if tbl == t {
			return i
		}
	}
	return -1
}

func TestWriteSequentialOrderAndBatching(t *testing.T) {
	ds := generateDefault(t)
	rec := &recordingSink{}

	counts, err := Write(context.Background(), rec, ds, WriteOptions{})
	require.NoError(t, err)

	last := -1
	rows := map[model.Table]int{}
	for _, c := range rec.calls {
		rank := tableRank(c.table)
		assert.GreaterOrEqual(t, rank, last, "table %s written after a later table", c.table)
		last = rank
		assert.LessOrEqual(t, c.rows, DefaultBatchSize)
		assert.Positive(t, c.rows)
		rows[c.table] += c.rows
	}

	for _, tbl := range model.Tables {
		assert.Equal(t, ds.Count(tbl), rows[tbl], tbl)
		assert.Equal(t, ds.Count(tbl), counts[tbl], tbl)
	}
	assert.Equal(t, len(ds.Users)+len(ds.Agents)+len(ds.AgentActions)+len(ds.Runs)+
		len(ds.Messages)+len(ds.UserMessages)+len(ds.RunActions), counts.Total())
}

func TestWriteReportsProgressPerTable(t *testing.T) {
	ds := generateDefault(t)

	var seen []model.Table
	_, err := Write(context.Background(), sink.Discard, ds, WriteOptions{
		Progress: func(table model.Table, rows int) {
			assert.Equal(t, ds.Count(table), rows, table)
			seen = append(seen, table)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.Tables, seen)
}

func TestWriteCustomBatchSize(t *testing.T) {
	ds := generateDefault(t)
	rec := &recordingSink{}

	_, err := Write(context.Background(), rec, ds, WriteOptions{BatchSize: 7})
	require.NoError(t, err)

	for _, c := range rec.calls {
		assert.LessOrEqual(t, c.rows, 7)
	}
}

func TestWriteConcurrentKeepsParentsFirst(t *testing.T) {
	ds := generateDefault(t)
	rec := &recordingSink{}

	counts, err := Write(context.Background(), rec, ds, WriteOptions{Concurrency: 4})
	require.NoError(t, err)

	firstChild := -1
	for i, c := range rec.calls {
		if tableRank(c.table) >= len(parentTables) {
			firstChild = i
			break
		}
	}
	require.NotEqual(t, -1, firstChild)
	for _, c := range rec.calls[firstChild:] {
		assert.GreaterOrEqual(t, tableRank(c.table), len(parentTables), "parent %s written after a child", c.table)
	}
	for _, tbl := range model.Tables {
		assert.Equal(t, ds.Count(tbl), counts[tbl], tbl)
	}
}

func TestWriteAbortsOnFirstFailure(t *testing.T) {
	ds := generateDefault(t)
	rec := &recordingSink{failOn: model.TableAgent}

	counts, err := Write(context.Background(), rec, ds, WriteOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed: write agent")
	assert.Contains(t, err.Error(), "boom")

	for _, c := range rec.calls {
		assert.NotEqual(t, model.TableAgentRun, c.table, "runs written after agent failure")
	}
	assert.Equal(t, len(ds.Users), counts[model.TableUser])
	assert.Zero(t, counts[model.TableAgentRun])
}

func TestWriteConcurrentFailureSurfaces(t *testing.T) {
	ds := generateDefault(t)
	rec := &recordingSink{failOn: model.TableAgentRunUserMessage}

	_, err := Write(context.Background(), rec, ds, WriteOptions{Concurrency: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent_run_user_message")
}

func TestWriteConcurrentStopsDispatchingAfterFailure(t *testing.T) {
	ds := generateDefault(t)
	const concurrency = 2

	var failed atomic.Bool
	var afterFailure, childWrites atomic.Int64
	// Ignores ctx so only Write itself can stop further batches.
	s := sink.Func(func(_ context.Context, table model.Table, _ []model.Record) error {
		if tableRank(table) < len(parentTables) {
			return nil
		}
		childWrites.Add(1)
		if failed.Load() {
			afterFailure.Add(1)
			return nil
		}
		if table == model.TableAgentRunMessage {
			failed.Store(true)
			return errors.New("boom")
		}
		return nil
	})

	_, err := Write(context.Background(), s, ds, WriteOptions{Concurrency: concurrency})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed: write agent_run_message: boom")

	var batches int
	for _, tbl := range childTables {
		batches += len(chunk(ds.Records(tbl), DefaultBatchSize))
	}
	require.Greater(t, batches, 2*concurrency)
	// Batches already in flight when the failure lands may still complete.
	assert.LessOrEqual(t, afterFailure.Load(), int64(concurrency))
	assert.Less(t, childWrites.Load(), int64(batches))
}

func TestWriteConcurrentHonoursCancelledContext(t *testing.T) {
	ds := generateDefault(t)
	ctx, cancel := context.WithCancel(context.Background())

	var childWrites atomic.Int64
	var runRows int
	// Cancels once every parent row has been accepted.
	s := sink.Func(func(_ context.Context, table model.Table, records []model.Record) error {
		if tableRank(table) >= len(parentTables) {
			childWrites.Add(1)
		}
		if table == model.TableAgentRun {
			runRows += len(records)
			if runRows == ds.Count(model.TableAgentRun) {
				cancel()
			}
		}
		return nil
	})

	_, err := Write(ctx, s, ds, WriteOptions{Concurrency: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, childWrites.Load())
}

func TestWriteHonoursCancelledContext(t *testing.T) {
	ds := generateDefault(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Write(ctx, sink.Discard, ds, WriteOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChunk(t *testing.T) {
	records := make([]model.Record, 1201)
	for i := range records {
		records[i] = model.User{}
	}
	chunks := chunk(records, 500)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 201)
	assert.Nil(t, chunk(nil, 500))
}
