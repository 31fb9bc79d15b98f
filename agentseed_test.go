package agentseed

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashita-ai/agentseed/internal/sink/rest"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func newTestApp(t *testing.T, opts ...Option) (*App, *bytes.Buffer) {
	t.Helper()
	unsetenv(t, "VITE_SUPABASE_URL", "SUPABASE_SERVICE_ROLE_KEY", "DATABASE_URL",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "AGENTSEED_HTTP_TIMEOUT", "AGENTSEED_COPY_TIMEOUT")

	var out bytes.Buffer
	base := []Option{
		WithOutput(&out),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithCounts(5, 10, 6, 60),
	}
	app, err := New(append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(context.Background()) })
	return app, &out
}

// fakePostgREST counts inserted rows per table and can reject one table.
type fakePostgREST struct {
	mu       sync.Mutex
	rows     map[string]int
	order    []string
	rejectOn string
}

func (f *fakePostgREST) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
		if table == f.rejectOn {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"code":"23505","message":"duplicate key value","details":null,"hint":null}`)
			return
		}
		var batch []json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			t.Errorf("decode %s batch: %v", table, err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		if f.rows[table] == 0 {
			f.order = append(f.order, table)
		}
		f.rows[table] += len(batch)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
}

func TestNewRejectsImpossibleCounts(t *testing.T) {
	unsetenv(t, "AGENTSEED_HTTP_TIMEOUT", "AGENTSEED_COPY_TIMEOUT")
	_, err := New(WithLogger(slog.New(slog.DiscardHandler)), WithCounts(5, 5, 21, 10))
	require.Error(t, err)
}

func TestPreviewPrintsAndExports(t *testing.T) {
	app, out := newTestApp(t)
	dir := t.TempDir()

	report, err := app.Preview(context.Background(), PreviewOptions{
		Save:       true,
		Path:       filepath.Join(dir, "preview.json"),
		SQLitePath: filepath.Join(dir, "preview.db"),
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "PREVIEW MODE")
	assert.Contains(t, text, "USER (5 total records)")
	assert.Contains(t, text, "AGENT_ACTION (6 total records)")
	assert.Contains(t, text, "SUMMARY")
	assert.Contains(t, text, "Data saved to")
	assert.Contains(t, text, "Preview complete!")

	assert.Equal(t, 5, report.Counts["user"])
	assert.Equal(t, 60, report.Counts["agent_run"])
	assert.FileExists(t, report.ExportPath)
	assert.FileExists(t, report.SQLitePath)

	b, err := os.ReadFile(report.ExportPath)
	require.NoError(t, err)
	var doc map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Len(t, doc["agent"], 10)
}

func TestPreviewWithoutSaveShowsTip(t *testing.T) {
	app, out := newTestApp(t)

	report, err := app.Preview(context.Background(), PreviewOptions{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Tip: run with --save")
	assert.Empty(t, report.ExportPath)
}

func TestSeedRESTInsertsEveryTableInOrder(t *testing.T) {
	fake := &fakePostgREST{rows: map[string]int{}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	var hooked []string
	app, _ := newTestApp(t,
		WithSupabase(srv.URL, "service-key"),
		WithHook(HookFunc(func(_ context.Context, table string, rows int) error {
			hooked = append(hooked, table)
			return nil
		})),
	)

	report, err := app.Seed(context.Background(), SeedOptions{Target: TargetREST})
	require.NoError(t, err)

	want := []string{"user", "agent_action", "agent", "agent_run",
		"agent_run_message", "agent_run_user_message", "agent_run_action"}
	assert.Equal(t, want, hooked)
	for table, n := range report.Counts {
		assert.Equal(t, n, fake.rows[table], table)
	}
	assert.Equal(t, 60, fake.rows["agent_run"])
	assert.Equal(t, report.Total(), sumValues(fake.rows))
}

func TestSeedRESTConcurrentStillWritesParentsFirst(t *testing.T) {
	fake := &fakePostgREST{rows: map[string]int{}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	app, _ := newTestApp(t, WithSupabase(srv.URL, "service-key"))
	_, err := app.Seed(context.Background(), SeedOptions{Target: TargetREST, Concurrency: 3})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(fake.order), 4)
	assert.Equal(t, []string{"user", "agent_action", "agent", "agent_run"}, fake.order[:4])
}

func TestSeedRESTAbortsOnRejectedBatch(t *testing.T) {
	fake := &fakePostgREST{rows: map[string]int{}, rejectOn: "agent"}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	app, _ := newTestApp(t, WithSupabase(srv.URL, "service-key"))
	_, err := app.Seed(context.Background(), SeedOptions{})
	require.Error(t, err)
	assert.True(t, rest.IsConflict(err))
	assert.Equal(t, 5, fake.rows["user"])
	assert.Zero(t, fake.rows["agent_run"])
}

func TestSeedRequiresCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.Seed(context.Background(), SeedOptions{Target: TargetREST})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = app.Seed(context.Background(), SeedOptions{Target: TargetPostgres})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestPreviewIgnoresSeedOnlySettings(t *testing.T) {
	unsetenv(t, "OTEL_EXPORTER_OTLP_ENDPOINT")
	t.Setenv("AGENTSEED_COPY_TIMEOUT", "0s")
	t.Setenv("AGENTSEED_HTTP_TIMEOUT", "soon")

	var out bytes.Buffer
	app, err := New(
		WithOutput(&out),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithCounts(2, 2, 2, 2),
		WithSupabase("http://127.0.0.1:1", "service-key"),
		WithDatabaseURL("postgres://127.0.0.1:1/seed"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(context.Background()) })

	_, err = app.Preview(context.Background(), PreviewOptions{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Preview complete!")

	_, err = app.Seed(context.Background(), SeedOptions{Target: TargetREST})
	assert.ErrorContains(t, err, "AGENTSEED_HTTP_TIMEOUT")
	_, err = app.Seed(context.Background(), SeedOptions{Target: TargetPostgres})
	assert.ErrorContains(t, err, "AGENTSEED_HTTP_TIMEOUT")
}

func TestSeedRESTLogsHintForRejectedRequest(t *testing.T) {
	tests := []struct {
		name   string
		status int
		hint   string
	}{
		{name: "bad key", status: http.StatusUnauthorized, hint: "check SUPABASE_SERVICE_ROLE_KEY"},
		{name: "missing table", status: http.StatusNotFound, hint: "apply migrations/001_seed_schema.sql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			var logs bytes.Buffer
			app, _ := newTestApp(t,
				WithSupabase(srv.URL, "service-key"),
				WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
			)
			_, err := app.Seed(context.Background(), SeedOptions{Target: TargetREST})
			require.Error(t, err)
			assert.Contains(t, logs.String(), tt.hint)
		})
	}
}

func TestSeedRESTConflictLogsNoHint(t *testing.T) {
	fake := &fakePostgREST{rows: map[string]int{}, rejectOn: "user"}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	var logs bytes.Buffer
	app, _ := newTestApp(t,
		WithSupabase(srv.URL, "service-key"),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	_, err := app.Seed(context.Background(), SeedOptions{})
	require.Error(t, err)
	assert.NotContains(t, logs.String(), "SUPABASE_SERVICE_ROLE_KEY")
	assert.NotContains(t, logs.String(), "001_seed_schema.sql")
}

func TestSeedUnknownTarget(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := app.Seed(context.Background(), SeedOptions{Target: "mysql"})
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func sumValues(m map[string]int) int {
	var n int
	for _, v := range m {
		n += v
	}
	return n
}
