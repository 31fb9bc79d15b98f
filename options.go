package agentseed

import (
	"io"
	"log/slog"

	"github.com/ashita-ai/agentseed/internal/seed"
)

// Option configures an App.
type Option func(*resolvedOptions)

// resolvedOptions holds all overrides after applying options.
// Unexported; callers use the With* functions.
type resolvedOptions struct {
	supabaseURL       string
	serviceRoleKey    string
	databaseURL       string
	logger            *slog.Logger
	out               io.Writer
	version           string
	counts            *volumeCounts
	sameAgentMessages bool
	hooks             []Hook
	genOpts           []seed.Option
}

type volumeCounts struct {
	users, agents, actions, runs int
}

// WithSupabase overrides VITE_SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY.
func WithSupabase(url, serviceRoleKey string) Option {
	return func(o *resolvedOptions) {
		o.supabaseURL = url
		o.serviceRoleKey = serviceRoleKey
	}
}

// WithDatabaseURL overrides DATABASE_URL for the postgres target.
func WithDatabaseURL(url string) Option {
	return func(o *resolvedOptions) { o.databaseURL = url }
}

// WithLogger sets the structured logger for the App.
// If not set, the default slog logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *resolvedOptions) { o.logger = logger }
}

// WithOutput sets where Preview writes its human-readable report. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *resolvedOptions) { o.out = w }
}

// WithVersion sets the version reported to telemetry.
func WithVersion(version string) Option {
	return func(o *resolvedOptions) { o.version = version }
}

// WithCounts replaces the default volumes of 20 users, 200 agents, 20 agent
// actions and 2000 runs. actions may not exceed the 20-entry action catalog.
func WithCounts(users, agents, actions, runs int) Option {
	return func(o *resolvedOptions) {
		o.counts = &volumeCounts{users: users, agents: agents, actions: actions, runs: runs}
	}
}

// WithSameAgentMessages attributes every agent message to the run's own agent
// instead of a random agent.
func WithSameAgentMessages(enabled bool) Option {
	return func(o *resolvedOptions) { o.sameAgentMessages = enabled }
}

// WithHook registers a hook notified as each table finishes writing.
// Multiple hooks may be registered; they run in registration order.
func WithHook(h Hook) Option {
	return func(o *resolvedOptions) { o.hooks = append(o.hooks, h) }
}

// withGeneratorOptions passes options straight to the generator. Tests use it
// to pin the random source and clock.
func withGeneratorOptions(opts ...seed.Option) Option {
	return func(o *resolvedOptions) { o.genOpts = append(o.genOpts, opts...) }
}
