package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/hylite/internal/mcp"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the hylite MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), opts.verbose))
		},
	}
}

// serve runs the MCP server until ctx is cancelled or in is closed
func serve(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	server := mcp.NewServer(logger)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// the server ending on its own also stops the wait below
		defer cancel()
		logger.Info("MCP server ready, listening on stdio", "version", version)
		return server.Serve(gctx, in, out)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
