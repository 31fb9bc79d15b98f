// Package agentseed is the public API for generating and loading synthetic
// agent-activity data.
//
// The CLI and any embedding program construct an App and call Preview or Seed:
//
//	app, err := agentseed.New(
//	    agentseed.WithVersion(version),
//	    agentseed.WithLogger(logger),
//	)
//	if err != nil { ... }
//	defer app.Close(ctx)
//	report, err := app.Seed(ctx, agentseed.SeedOptions{Target: agentseed.TargetREST})
//
// The root package imports internal/*, never the other way round. Public
// types (Report, Target, Hook) carry no internal types.
package agentseed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ashita-ai/agentseed/internal/config"
	"github.com/ashita-ai/agentseed/internal/model"
	"github.com/ashita-ai/agentseed/internal/seed"
	"github.com/ashita-ai/agentseed/internal/sink"
	"github.com/ashita-ai/agentseed/internal/sink/preview"
	"github.com/ashita-ai/agentseed/internal/sink/rest"
	"github.com/ashita-ai/agentseed/internal/storage"
	"github.com/ashita-ai/agentseed/internal/storage/sqlite"
	"github.com/ashita-ai/agentseed/internal/telemetry"
	"github.com/ashita-ai/agentseed/migrations"
)

// ErrMissingCredentials is returned by Seed when the chosen target is not configured.
var ErrMissingCredentials = config.ErrMissingCredentials

// ErrUnknownTarget is returned by Seed for a target other than rest or postgres.
var ErrUnknownTarget = errors.New("agentseed: unknown target")

// App generates datasets and hands them to a destination. Construct with New.
type App struct {
	cfg          config.Config
	genCfg       seed.Config
	genOpts      []seed.Option
	hooks        []Hook
	out          io.Writer
	logger       *slog.Logger
	version      string
	otelShutdown telemetry.Shutdown
}

// New loads configuration from the environment (and .env when present),
// applies option overrides, and initializes telemetry. It does not touch any
// database; credentials are checked when Seed picks a target.
func New(opts ...Option) (*App, error) {
	o := resolvedOptions{}
	for _, fn := range opts {
		fn(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	out := o.out
	if out == nil {
		out = os.Stdout
	}
	version := o.version
	if version == "" {
		version = "dev"
	}

	// Load .env file if present (non-fatal).
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.supabaseURL != "" {
		cfg.SupabaseURL = o.supabaseURL
	}
	if o.serviceRoleKey != "" {
		cfg.ServiceRoleKey = o.serviceRoleKey
	}
	if o.databaseURL != "" {
		cfg.DatabaseURL = o.databaseURL
	}

	genCfg := seed.DefaultConfig()
	if o.counts != nil {
		genCfg.Users = o.counts.users
		genCfg.Agents = o.counts.agents
		genCfg.AgentActions = o.counts.actions
		genCfg.Runs = o.counts.runs
	}
	if o.sameAgentMessages {
		genCfg.MessageAuthor = seed.AuthorRunAgent
	}
	if err := genCfg.Validate(seed.DefaultVocabulary()); err != nil {
		return nil, err
	}

	otelShutdown, err := telemetry.Init(context.Background(), cfg.OTELEndpoint, cfg.ServiceName, version, cfg.OTELInsecure)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:          cfg,
		genCfg:       genCfg,
		genOpts:      o.genOpts,
		hooks:        o.hooks,
		out:          out,
		logger:       logger,
		version:      version,
		otelShutdown: otelShutdown,
	}, nil
}

// Close flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	return a.otelShutdown(ctx)
}

// Preview generates a dataset, prints samples and per-table counts, and
// optionally exports it to JSON and SQLite. Nothing is sent to a remote database.
func (a *App) Preview(ctx context.Context, opts PreviewOptions) (*Report, error) {
	start := time.Now()
	fmt.Fprintln(a.out, "PREVIEW MODE - No data will be inserted")
	fmt.Fprintln(a.out)

	ds, err := a.generate()
	if err != nil {
		return nil, err
	}

	collector := preview.New()
	var dst sink.Sink = collector
	if opts.SQLitePath != "" {
		store, err := sqlite.Open(opts.SQLitePath, a.logger)
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()
		dst = sink.Multi(collector, sink.Instrument(store, "sqlite"))
	}

	counts, err := seed.Write(ctx, dst, ds, seed.WriteOptions{
		Logger:   a.logger,
		Progress: a.progress(ctx),
	})
	if err != nil {
		return nil, err
	}

	if err := collector.Print(a.out, opts.SampleSize); err != nil {
		return nil, err
	}

	report := newReport("preview", counts, start)
	if opts.Save {
		path := opts.Path
		if path == "" {
			path = preview.DefaultPath
		}
		if err := collector.Export(path); err != nil {
			return nil, err
		}
		report.ExportPath = path
		fmt.Fprintf(a.out, "Data saved to %s\n", path)
	} else {
		fmt.Fprintln(a.out, "Tip: run with --save to export all data to "+preview.DefaultPath)
	}
	if opts.SQLitePath != "" {
		report.SQLitePath = opts.SQLitePath
		fmt.Fprintf(a.out, "SQLite database written to %s\n", opts.SQLitePath)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Preview complete! If this looks good, run `agentseed seed` to insert the data.")
	return report, nil
}

// Seed generates a dataset and inserts it into the configured target in
// dependency order. The first failed batch aborts the run; rows already
// inserted stay in place.
func (a *App) Seed(ctx context.Context, opts SeedOptions) (*Report, error) {
	start := time.Now()
	target := opts.Target
	if target == "" {
		target = TargetREST
	}

	dst, closeFn, err := a.openTarget(ctx, target, opts.Migrate)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	ds, err := a.generate()
	if err != nil {
		return nil, err
	}

	a.logger.Info("seed: inserting", "target", target, "concurrency", max(opts.Concurrency, 1))
	counts, err := seed.Write(ctx, sink.Instrument(dst, string(target)), ds, seed.WriteOptions{
		BatchSize:   seed.DefaultBatchSize,
		Concurrency: opts.Concurrency,
		Logger:      a.logger,
		Progress:    a.progress(ctx),
	})
	if err != nil {
		a.logFailureHint(target, err)
		return nil, err
	}

	report := newReport(string(target), counts, start)
	a.logger.Info("seed: complete", "target", target, "rows", report.Total(), "elapsed", report.Elapsed)
	return report, nil
}

func (a *App) openTarget(ctx context.Context, target Target, migrate bool) (sink.Sink, func(), error) {
	switch target {
	case TargetREST:
		if err := a.cfg.ValidateREST(); err != nil {
			return nil, nil, err
		}
		timeouts, err := config.LoadTimeouts()
		if err != nil {
			return nil, nil, err
		}
		if role, ok := a.cfg.ServiceKeyRole(); ok && role != config.ServiceRole {
			a.logger.Warn("seed: service key is not a service_role key; row level security may reject inserts", "role", role)
		}
		client, err := rest.NewClient(rest.Config{
			BaseURL:    a.cfg.SupabaseURL,
			ServiceKey: a.cfg.ServiceRoleKey,
			Timeout:    timeouts.HTTP,
		})
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil

	case TargetPostgres:
		if err := a.cfg.ValidatePostgres(); err != nil {
			return nil, nil, err
		}
		timeouts, err := config.LoadTimeouts()
		if err != nil {
			return nil, nil, err
		}
		db, err := storage.New(ctx, a.cfg.DatabaseURL, timeouts.Copy, a.logger)
		if err != nil {
			return nil, nil, err
		}
		if migrate {
			if err := db.RunMigrations(ctx, migrations.FS); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		if err := db.VerifySchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
}

// logFailureHint points at the usual cause of a rejected REST insert.
func (a *App) logFailureHint(target Target, err error) {
	switch {
	case rest.IsUnauthorized(err):
		a.logger.Error("seed: service key rejected; check SUPABASE_SERVICE_ROLE_KEY", "target", target, "error", err)
	case rest.IsNotFound(err):
		a.logger.Error("seed: table missing; apply migrations/001_seed_schema.sql to the project", "target", target, "error", err)
	}
}

func (a *App) generate() (*model.Dataset, error) {
	g, err := seed.New(a.genCfg, a.genOpts...)
	if err != nil {
		return nil, err
	}
	ds, err := g.Generate()
	if err != nil {
		return nil, err
	}
	a.logger.Info("seed: dataset generated",
		"users", len(ds.Users),
		"agents", len(ds.Agents),
		"agent_actions", len(ds.AgentActions),
		"runs", len(ds.Runs),
		"messages", len(ds.Messages),
		"user_messages", len(ds.UserMessages),
		"run_actions", len(ds.RunActions),
	)
	return ds, nil
}

// progress fans table completions out to registered hooks. Hook errors are
// logged and never fail the run.
func (a *App) progress(ctx context.Context) func(model.Table, int) {
	return func(t model.Table, rows int) {
		a.logger.Info(fmt.Sprintf("Created %d %s records", rows, t))
		for _, h := range a.hooks {
			if err := h.OnTableWritten(ctx, string(t), rows); err != nil {
				a.logger.Warn("hook failed", "table", t, "error", err)
			}
		}
	}
}

func newReport(target string, counts seed.Counts, start time.Time) *Report {
	r := &Report{
		Target:  target,
		Counts:  make(map[string]int, len(counts)),
		Elapsed: time.Since(start),
	}
	for t, n := range counts {
		r.Counts[string(t)] = n
	}
	return r
}
