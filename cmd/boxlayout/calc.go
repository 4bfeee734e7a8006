package main

import (
	"context"
	"fmt"
	"io"

	"github.com/grindlemire/go-boxlayout/internal/config"
	"github.com/grindlemire/go-boxlayout/internal/document"
	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc [path...]",
		Short: "Lay out documents and print the computed boxes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCalc(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

// runCalc lays out every document concurrently and prints the results in
// argument order. The first failure cancels the remaining documents.
func (a *app) runCalc(ctx context.Context, out io.Writer, paths []string) error {
	files, err := collectDocuments(paths)
	if err != nil {
		return err
	}

	results := make([]document.Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := a.layout(path)
			if err != nil {
				return err
			}
			results[i] = tree.Result(path, a.cfg.Output.Precision)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if a.cfg.Output.Format == config.FormatJSON {
		return document.WriteJSON(out, results)
	}
	return document.WriteText(out, results, a.cfg.Output.Precision)
}

// layout loads, builds and calculates one document on its own engine.
func (a *app) layout(path string) (*document.Tree, error) {
	logger := a.logger.With(zap.String("document", path))
	logger.Debug("laying out document")

	doc, err := document.LoadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := document.Build(doc,
		layout.WithViewport(a.cfg.Viewport.Width, a.cfg.Viewport.Height),
		layout.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := tree.Calculate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}
