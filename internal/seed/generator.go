// Package seed generates a relationally consistent synthetic dataset of users,
// agents, agent actions, runs, and per-run messages and actions.
//
// Generation is a strict pipeline. Reference data (users, actions) is built
// first, then entities that reference it (agents, runs), then per-run events.
// Each stage fully materializes its output before the next stage reads it.
// The generator has no knowledge of where records end up; see Write.
package seed

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/ashita-ai/agentseed/internal/model"
)

var (
	// ErrInvalidBounds is returned when a configured count or range is malformed.
	ErrInvalidBounds = errors.New("seed: invalid bounds")

	// ErrNoCandidates is returned when a stage must reference a parent set that is empty.
	ErrNoCandidates = errors.New("seed: no candidates to reference")
)

// AuthorPolicy selects which agent authors the agent messages of a run.
type AuthorPolicy int

const (
	// AuthorAnyAgent picks a random agent from the whole agent set for every
	// message, modelling multi-agent conversations.
	AuthorAnyAgent AuthorPolicy = iota
	// AuthorRunAgent attributes every message to the run's own agent.
	AuthorRunAgent
)

// Range is an inclusive integer range.
type Range struct {
	Min, Max int
}

// DurationRange is an inclusive duration range.
type DurationRange struct {
	Min, Max time.Duration
}

// Config holds the generation counts and distributions.
type Config struct {
	Users        int
	Agents       int
	AgentActions int
	Runs         int

	// Lookback is the window before now in which creation timestamps fall.
	Lookback time.Duration

	// RunDuration is added to created_at to produce updated_at for finished runs.
	RunDuration DurationRange

	AgentMessages         Range
	AgentMessageStep      DurationRange
	AgentMessageSentences Range
	MessageAuthor         AuthorPolicy

	UserMessages         Range
	UserMessageStep      DurationRange
	UserMessageSentences Range

	RunActions    Range
	RunActionStep DurationRange
	// RunActionProbability is the chance that a run not in took_action status
	// still records actions.
	RunActionProbability float64
}

// Default counts.
const (
	DefaultUsers        = 20
	DefaultAgents       = 200
	DefaultAgentActions = 20
	DefaultRuns         = 2000
)

// DefaultConfig returns the built-in generation profile.
func DefaultConfig() Config {
	return Config{
		Users:        DefaultUsers,
		Agents:       DefaultAgents,
		AgentActions: DefaultAgentActions,
		Runs:         DefaultRuns,
		Lookback:     8 * 7 * 24 * time.Hour,

		RunDuration: DurationRange{30 * time.Second, 600 * time.Second},

		AgentMessages:         Range{3, 10},
		AgentMessageStep:      DurationRange{5 * time.Second, 60 * time.Second},
		AgentMessageSentences: Range{1, 3},
		MessageAuthor:         AuthorAnyAgent,

		UserMessages:         Range{2, 8},
		UserMessageStep:      DurationRange{3 * time.Second, 45 * time.Second},
		UserMessageSentences: Range{1, 2},

		RunActions:           Range{1, 2},
		RunActionStep:        DurationRange{10 * time.Second, 120 * time.Second},
		RunActionProbability: 0.3,
	}
}

// Validate checks counts and ranges against the vocabulary.
func (c Config) Validate(v Vocabulary) error {
	if c.Users < 0 || c.Agents < 0 || c.AgentActions < 0 || c.Runs < 0 {
		return fmt.Errorf("%w: counts must be non-negative", ErrInvalidBounds)
	}
	if c.AgentActions > len(v.ActionCatalog) {
		return fmt.Errorf("%w: %d agent actions requested, catalog has %d",
			ErrInvalidBounds, c.AgentActions, len(v.ActionCatalog))
	}
	if c.Agents > 0 && c.Users == 0 {
		return fmt.Errorf("%w: agents require at least one user", ErrInvalidBounds)
	}
	if c.Runs > 0 && (c.Users == 0 || c.Agents == 0) {
		return fmt.Errorf("%w: runs require at least one user and one agent", ErrInvalidBounds)
	}
	if c.Runs > 0 && c.AgentActions == 0 {
		return fmt.Errorf("%w: runs require at least one agent action", ErrInvalidBounds)
	}
	if c.Lookback <= 0 {
		return fmt.Errorf("%w: lookback must be positive", ErrInvalidBounds)
	}
	if c.RunActionProbability < 0 || c.RunActionProbability > 1 {
		return fmt.Errorf("%w: run action probability %v outside [0,1]", ErrInvalidBounds, c.RunActionProbability)
	}

	ranges := map[string]Range{
		"agent messages":          c.AgentMessages,
		"agent message sentences": c.AgentMessageSentences,
		"user messages":           c.UserMessages,
		"user message sentences":  c.UserMessageSentences,
		"run actions":             c.RunActions,
	}
	for name, r := range ranges {
		if r.Min <= 0 || r.Max < r.Min {
			return fmt.Errorf("%w: %s range [%d,%d]", ErrInvalidBounds, name, r.Min, r.Max)
		}
	}

	steps := map[string]DurationRange{
		"run duration":       c.RunDuration,
		"agent message step": c.AgentMessageStep,
		"user message step":  c.UserMessageStep,
		"run action step":    c.RunActionStep,
	}
	for name, r := range steps {
		if r.Min <= 0 || r.Max < r.Min {
			return fmt.Errorf("%w: %s range [%s,%s]", ErrInvalidBounds, name, r.Min, r.Max)
		}
	}

	if c.Users > 0 && (len(v.FirstNames) == 0 || len(v.LastNames) == 0 || len(v.EmailDomains) == 0) {
		return fmt.Errorf("%w: vocabulary has no names or email domains", ErrInvalidBounds)
	}
	if c.Agents > 0 && (len(v.AgentPrefixes) == 0 || len(v.AgentDomains) == 0 || len(v.AgentSuffixes) == 0 ||
		len(v.DescriptionActions) == 0 || len(v.DescriptionTasks) == 0) {
		return fmt.Errorf("%w: vocabulary has no agent naming tables", ErrInvalidBounds)
	}
	if c.Runs > 0 && len(v.LoremWords) == 0 {
		return fmt.Errorf("%w: vocabulary has no lorem words", ErrInvalidBounds)
	}
	return nil
}

// Generator produces datasets. It is not safe for concurrent use.
type Generator struct {
	cfg   Config
	vocab Vocabulary
	src   Source
	now   func() time.Time
	newID func() uuid.UUID
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource injects the random source. Defaults to a freshly seeded PCG.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithClock overrides the reference time used for lookback windows.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithVocabulary replaces the built-in word tables.
func WithVocabulary(v Vocabulary) Option {
	return func(g *Generator) { g.vocab = v }
}

// WithIDFunc overrides identifier allocation. Defaults to uuid.New.
func WithIDFunc(fn func() uuid.UUID) Option {
	return func(g *Generator) { g.newID = fn }
}

// New validates cfg and returns a Generator.
func New(cfg Config, opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:   cfg,
		vocab: DefaultVocabulary(),
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // synthetic data, not security sensitive
	}
	if err := cfg.Validate(g.vocab); err != nil {
		return nil, err
	}
	return g, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate runs every stage in dependency order and returns the dataset.
func (g *Generator) Generate() (*model.Dataset, error) {
	now := g.now().UTC()

	ds := &model.Dataset{
		Users:        g.Users(now),
		AgentActions: g.AgentActions(now),
	}

	var err error
	if ds.Agents, err = g.Agents(now, ds.Users); err != nil {
		return nil, fmt.Errorf("seed: agents: %w", err)
	}
	if ds.Runs, err = g.Runs(now, ds.Users, ds.Agents); err != nil {
		return nil, fmt.Errorf("seed: runs: %w", err)
	}
	if ds.Messages, err = g.AgentMessages(ds.Runs, ds.Agents); err != nil {
		return nil, fmt.Errorf("seed: agent messages: %w", err)
	}
	ds.UserMessages = g.UserMessages(ds.Runs)
	if ds.RunActions, err = g.RunActions(ds.Runs, ds.Agents, ds.AgentActions); err != nil {
		return nil, fmt.Errorf("seed: run actions: %w", err)
	}
	return ds, nil
}

// ── sampling helpers ──

// intBetween returns a uniform int in [r.Min, r.Max].
func (g *Generator) intBetween(r Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + g.src.IntN(r.Max-r.Min+1)
}

// durationBetween returns a uniform duration in [r.Min, r.Max] at millisecond granularity.
func (g *Generator) durationBetween(r DurationRange) time.Duration {
	lo, hi := r.Min.Milliseconds(), r.Max.Milliseconds()
	if hi <= lo {
		return r.Min
	}
	return time.Duration(lo+g.src.Int64N(hi-lo+1)) * time.Millisecond
}

// timeInLookback returns a uniform instant in [now-Lookback, now].
func (g *Generator) timeInLookback(now time.Time) time.Time {
	window := g.cfg.Lookback.Milliseconds()
	offset := g.src.Int64N(window + 1)
	return now.Add(-time.Duration(offset) * time.Millisecond)
}

func pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
