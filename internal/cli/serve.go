package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sugiyama/pkg/server"
)

// serveCommand creates the serve command, which exposes the parse ->
// layout -> render pipeline over HTTP for callers that don't want to
// embed this module directly.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP server exposing POST /layout",
		Long: `Run an HTTP server that accepts a graph over POST /layout and returns
a computed layout (and optionally rendered artifacts) as JSON.

Every request is tagged with a correlation id, echoed in the
X-Request-Id response header and included in both the JSON error body
and the server's structured logs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(runner, c.Logger)
	httpServer := &http.Server{Addr: addr, Handler: srv.Router()}

	go func() {
		<-ctx.Done()
		_ = httpServer.Close()
	}()

	c.Logger.Info("listening", "addr", addr)
	printInfo("Listening on %s", addr)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
