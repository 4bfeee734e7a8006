package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate documents without printing results",
		Long: `Check loads, builds and lays out each document and reports every
document that fails. Unlike calc it does not stop at the first failure.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

func (a *app) runCheck(ctx context.Context, out, errOut io.Writer, paths []string) error {
	files, err := collectDocuments(paths)
	if err != nil {
		return err
	}
	if a.verbose {
		fmt.Fprintf(out, "Checking %d document(s)\n", len(files))
	}

	errs := make([]error, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, errs[i] = a.layout(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errorCount int
	for i, path := range files {
		if errs[i] != nil {
			fmt.Fprintf(errOut, "%v\n", errs[i])
			errorCount++
			continue
		}
		if a.verbose {
			fmt.Fprintf(out, "ok %s\n", path)
		}
	}
	if errorCount > 0 {
		return fmt.Errorf("%d document(s) failed", errorCount)
	}
	return nil
}
