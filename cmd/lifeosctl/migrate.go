package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lifeos/lifeos-backend/internal/adapter/postgres"
)

type openFunc func(ctx context.Context) (*env, error)

func newMigrateCmd(open openFunc) *cobra.Command {
	migrate := &cobra.Command{Use: "migrate", Short: "Manage database migrations"}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.pool.Close()

			if err := postgres.Migrate(cmd.Context(), e.pool, e.logger); err != nil {
				return err
			}
			e.logger.Info("migrations up to date")
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.pool.Close()

			p, closeDB, err := postgres.NewMigrator(e.pool)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeDB(); err != nil {
					e.logger.Warn("close migrator", slog.String("error", err.Error()))
				}
			}()

			statuses, err := p.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("migration status: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
			for _, s := range statuses {
				applied := "-"
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
			}
			return tw.Flush()
		},
	}

	migrate.AddCommand(up, status)
	return migrate
}
