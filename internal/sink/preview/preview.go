// Package preview collects a generated dataset in memory so it can be
// inspected on the console or exported to disk instead of being persisted.
package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/ashita-ai/agentseed/internal/model"
)

// DefaultPath is where Export writes when no path is given.
const DefaultPath = "database/preview-data.json"

// DefaultSampleSize is the number of records Print shows per table.
const DefaultSampleSize = 3

const rule = "============================================================"

// Collector is a sink that keeps every record it receives.
type Collector struct {
	mu sync.Mutex
	ds model.Dataset
}

// New returns an empty collector.
func New() *Collector {
	return &Collector{}
}

// Write appends records to the in-memory dataset.
func (c *Collector) Write(ctx context.Context, table model.Table, records []model.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ds.Append(records); err != nil {
		return fmt.Errorf("preview: %s: %w", table, err)
	}
	return nil
}

// Dataset returns a snapshot of everything collected so far.
func (c *Collector) Dataset() *model.Dataset {
	c.mu.Lock()
	defer c.mu.Unlock()
	ds := c.ds
	return &ds
}

// Print writes a banner and the first sampleSize records of each table to w,
// followed by a summary of per-table counts.
func (c *Collector) Print(w io.Writer, sampleSize int) error {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	ds := c.Dataset()
	p := &printer{w: w, header: color.New(color.FgCyan, color.Bold)}

	for _, t := range model.Tables {
		records := ds.Records(t)
		p.line("")
		p.line(rule)
		p.heading(fmt.Sprintf("%s (%d total records)", strings.ToUpper(string(t)), len(records)))
		p.line(rule)
		p.line("")
		p.line("Sample records:")
		for i, r := range records[:min(sampleSize, len(records))] {
			b, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return fmt.Errorf("preview: encode %s sample: %w", t, err)
			}
			p.line("")
			p.line(fmt.Sprintf("[%d] %s", i+1, b))
		}
	}

	p.line("")
	p.line(rule)
	p.heading("SUMMARY")
	p.line(rule)
	p.line("")
	width := 0
	for _, t := range model.Tables {
		width = max(width, len(t)+1)
	}
	for _, t := range model.Tables {
		p.line(fmt.Sprintf("  %-*s %d records", width, string(t)+":", ds.Count(t)))
	}
	p.line("")
	return p.err
}

// Export writes the whole dataset to path as one indented JSON document keyed
// by table name. Missing parent directories are created.
func (c *Collector) Export(path string) error {
	if path == "" {
		path = DefaultPath
	}
	b, err := json.MarshalIndent(c.Dataset(), "", "  ")
	if err != nil {
		return fmt.Errorf("preview: encode dataset: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("preview: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("preview: write %s: %w", path, err)
	}
	return nil
}

// printer remembers the first write error so Print can report it once.
type printer struct {
	w      io.Writer
	header *color.Color
	err    error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) heading(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.header.Fprintln(p.w, s)
}
