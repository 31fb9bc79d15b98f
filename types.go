package agentseed

import "time"

// Target selects the destination for Seed.
type Target string

const (
	// TargetREST inserts through the Supabase PostgREST API.
	TargetREST Target = "rest"
	// TargetPostgres copies straight into a Postgres database.
	TargetPostgres Target = "postgres"
)

// PreviewOptions controls App.Preview.
type PreviewOptions struct {
	// SampleSize is the number of records printed per table. Defaults to 3.
	SampleSize int
	// Save exports the full dataset as JSON to Path.
	Save bool
	// Path defaults to database/preview-data.json.
	Path string
	// SQLitePath, if set, also writes the dataset into a SQLite file.
	SQLitePath string
}

// SeedOptions controls App.Seed.
type SeedOptions struct {
	Target Target
	// Migrate applies the embedded schema first. Postgres target only.
	Migrate bool
	// Concurrency bounds parallel child-table batches. 0 or 1 is sequential.
	Concurrency int
}

// Report summarizes one Preview or Seed call.
type Report struct {
	Target     string
	Counts     map[string]int // rows written per table name
	Elapsed    time.Duration
	ExportPath string
	SQLitePath string
}

// Total returns the number of rows across all tables.
func (r *Report) Total() int {
	var n int
	for _, c := range r.Counts {
		n += c
	}
	return n
}
