package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ashita-ai/agentseed"
	"github.com/ashita-ai/agentseed/internal/model"
)

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "agentseed",
		Short: "Generate synthetic agent activity data",
		Long: color.CyanString("agentseed") +
			" generates users, agents, runs and their message and action logs,\n" +
			"then previews them locally or inserts them into Supabase or Postgres.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPreviewCmd(logger), newSeedCmd(logger), newVersionCmd())
	return root
}

func newPreviewCmd(logger *slog.Logger) *cobra.Command {
	var (
		save       bool
		out        string
		sqlitePath string
		sameAgent  bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Generate a dataset and print samples without inserting anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := agentseed.New(
				agentseed.WithVersion(version),
				agentseed.WithLogger(logger),
				agentseed.WithOutput(cmd.OutOrStdout()),
				agentseed.WithSameAgentMessages(sameAgent),
			)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close(context.Background()) }()

			_, err = app.Preview(cmd.Context(), agentseed.PreviewOptions{
				Save:       save || out != "",
				Path:       out,
				SQLitePath: sqlitePath,
			})
			return err
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "export the full dataset as JSON")
	cmd.Flags().StringVar(&out, "out", "", "JSON export path (implies --save; default database/preview-data.json)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also write the dataset into this SQLite file")
	cmd.Flags().BoolVar(&sameAgent, "same-agent-messages", false, "attribute agent messages to the run's own agent")
	return cmd
}

func newSeedCmd(logger *slog.Logger) *cobra.Command {
	var (
		target      string
		migrate     bool
		concurrency int
		sameAgent   bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a dataset and insert it into the target database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := agentseed.Target(target)
			if t != agentseed.TargetREST && t != agentseed.TargetPostgres {
				return fmt.Errorf("--target must be rest or postgres, got %q", target)
			}
			if migrate && t != agentseed.TargetPostgres {
				return fmt.Errorf("--migrate requires --target postgres")
			}
			if concurrency < 1 {
				return fmt.Errorf("--concurrency must be at least 1")
			}

			app, err := agentseed.New(
				agentseed.WithVersion(version),
				agentseed.WithLogger(logger),
				agentseed.WithSameAgentMessages(sameAgent),
			)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close(context.Background()) }()

			report, err := app.Seed(cmd.Context(), agentseed.SeedOptions{
				Target:      t,
				Migrate:     migrate,
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", string(agentseed.TargetREST), "destination: rest (Supabase) or postgres (DATABASE_URL)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the embedded schema before inserting (postgres only)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "parallel batches for message and action tables")
	cmd.Flags().BoolVar(&sameAgent, "same-agent-messages", false, "attribute agent messages to the run's own agent")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "agentseed %s\n", version)
		},
	}
}

func printSummary(w io.Writer, r *agentseed.Report) {
	green := color.New(color.FgGreen, color.Bold)
	_, _ = green.Fprintf(w, "Seeding complete (%s, %s)\n", r.Target, r.Elapsed.Round(time.Millisecond))
	for _, t := range model.Tables {
		fmt.Fprintf(w, "  %-24s %d records\n", string(t)+":", r.Counts[string(t)])
	}
}
