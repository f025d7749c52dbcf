package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	userrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/user"
	"github.com/lifeos/lifeos-backend/internal/app"
	"github.com/lifeos/lifeos-backend/internal/service/impex"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

func newSheetCmd(open openFunc) *cobra.Command {
	sheet := &cobra.Command{Use: "sheet", Short: "Import and export budget sheets"}

	var (
		userRef string
		sheetID string
		file    string
		policy  string
		out     string
	)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Append rows from a CSV or Excel file to a sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(sheetID)
			if err != nil {
				return fmt.Errorf("--sheet: %w", err)
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.pool.Close()

			ctx, err := asUser(cmd.Context(), e, userRef)
			if err != nil {
				return err
			}

			svc := app.NewServices(e.logger, e.pool, e.cfg)
			res, err := svc.Impex.ImportFile(ctx, impex.ImportInput{
				SheetID:  id,
				FileName: filepath.Base(file),
				Data:     data,
				Policy:   policy,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (imported %d, skipped %d)\n", res.Message, res.Count, res.Skipped)
			for _, rowErr := range res.Errors {
				fmt.Fprintf(w, "  line %d: %s\n", rowErr.Line, rowErr.Reason)
			}
			return nil
		},
	}
	importCmd.Flags().StringVar(&file, "file", "", "path to a .csv, .xlsx or .xls file")
	importCmd.Flags().StringVar(&policy, "policy", "", "malformed row policy: skip|atomic (default from config)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a sheet as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(sheetID)
			if err != nil {
				return fmt.Errorf("--sheet: %w", err)
			}

			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.pool.Close()

			ctx, err := asUser(cmd.Context(), e, userRef)
			if err != nil {
				return err
			}

			svc := app.NewServices(e.logger, e.pool, e.cfg)
			f, err := svc.Impex.ExportSheet(ctx, id)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = f.FileName
			}
			if path == "-" {
				_, err = cmd.OutOrStdout().Write(f.Data)
				return err
			}
			if err := os.WriteFile(path, f.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", path, len(f.Data))
			return nil
		},
	}
	exportCmd.Flags().StringVar(&out, "out", "", "output path, - for stdout (default: <sheet>.csv)")

	for _, c := range []*cobra.Command{importCmd, exportCmd} {
		c.Flags().StringVar(&userRef, "user", "", "owner id or email")
		c.Flags().StringVar(&sheetID, "sheet", "", "sheet id")
		_ = c.MarkFlagRequired("user")
		_ = c.MarkFlagRequired("sheet")
	}
	_ = importCmd.MarkFlagRequired("file")

	sheet.AddCommand(importCmd, exportCmd)
	return sheet
}

// asUser resolves ref as a user id or email and returns ctx acting as
// that user.
func asUser(ctx context.Context, e *env, ref string) (context.Context, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return ctxutil.WithUserID(ctx, id), nil
	}

	u, err := userrepo.New(e.pool).GetByEmail(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("resolve user %q: %w", ref, err)
	}
	return ctxutil.WithUserID(ctx, u.ID), nil
}
