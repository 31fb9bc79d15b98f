package seed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ashita-ai/agentseed/internal/model"
	"github.com/ashita-ai/agentseed/internal/sink"
)

// DefaultBatchSize keeps each write under typical request payload limits.
const DefaultBatchSize = 500

// parentTables must be fully written, in order, before any child row.
var parentTables = []model.Table{
	model.TableUser,
	model.TableAgentAction,
	model.TableAgent,
	model.TableAgentRun,
}

// childTables depend only on parent tables, never on each other.
var childTables = []model.Table{
	model.TableAgentRunMessage,
	model.TableAgentRunUserMessage,
	model.TableAgentRunAction,
}

// WriteOptions controls how a dataset is handed to a sink.
type WriteOptions struct {
	// BatchSize caps the records per Sink.Write call. Zero means DefaultBatchSize.
	BatchSize int
	// Concurrency is the number of child-table batches written in parallel.
	// Values below 2 write everything sequentially in dependency order.
	Concurrency int
	Logger      *slog.Logger
	// Progress, if set, is called once per table after its last batch lands.
	Progress func(table model.Table, rows int)
}

// Counts maps each table to the number of rows written to it.
type Counts map[model.Table]int

// Total returns the number of rows across all tables.
func (c Counts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}
	return n
}

type batch struct {
	table   model.Table
	records []model.Record
}

// Write hands every table of ds to s in dependency order, split into batches.
// The first failing batch aborts the write; rows already accepted by the sink
// are not rolled back.
func Write(ctx context.Context, s sink.Sink, ds *model.Dataset, opts WriteOptions) (Counts, error) {
	size := opts.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	done := func(t model.Table, n int) {
		logger.Info("seed: table written", "table", t, "rows", n)
		if opts.Progress != nil {
			opts.Progress(t, n)
		}
	}

	counts := make(Counts, len(model.Tables))

	for _, t := range parentTables {
		if err := writeTable(ctx, s, t, ds.Records(t), size); err != nil {
			return counts, err
		}
		counts[t] = ds.Count(t)
		done(t, counts[t])
	}

	if opts.Concurrency < 2 {
		for _, t := range childTables {
			if err := writeTable(ctx, s, t, ds.Records(t), size); err != nil {
				return counts, err
			}
			counts[t] = ds.Count(t)
			done(t, counts[t])
		}
		return counts, nil
	}

	var batches []batch
	for _, t := range childTables {
		for _, c := range chunk(ds.Records(t), size) {
			batches = append(batches, batch{table: t, records: c})
		}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for _, b := range batches {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("seed: write %s: %w", b.table, err)
			}
			if err := s.Write(gctx, b.table, b.records); err != nil {
				return fmt.Errorf("seed: write %s: %w", b.table, err)
			}
			mu.Lock()
			counts[b.table] += len(b.records)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return counts, err
	}
	if err := ctx.Err(); err != nil {
		return counts, fmt.Errorf("seed: write: %w", err)
	}
	for _, t := range childTables {
		done(t, counts[t])
	}
	return counts, nil
}

func writeTable(ctx context.Context, s sink.Sink, t model.Table, records []model.Record, size int) error {
	for _, c := range chunk(records, size) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("seed: write %s: %w", t, err)
		}
		if err := s.Write(ctx, t, c); err != nil {
			return fmt.Errorf("seed: write %s: %w", t, err)
		}
	}
	return nil
}

// chunk splits records into consecutive slices of at most size elements.
func chunk(records []model.Record, size int) [][]model.Record {
	if len(records) == 0 {
		return nil
	}
	out := make([][]model.Record, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		out = append(out, records[start:end])
	}
	return out
}
