package serve

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/ccm2020/home-assistant/cmd/cmdutil"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	env  cmdutil.EnvironmentOptions
	addr string
}

// Cmd represents the serve command.
var Cmd = NewCommand()

// NewCommand returns a new serve command instance.
func NewCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve related-item searches over HTTP",
		Long: `Serve the search/related command over HTTP.

POST /api/search/related accepts {"id": 1, "type": "search/related", "item_type": "device", "item_id": "..."}
and replies with {"id": 1, "type": "result", "success": true, "result": {...}}.
GET /metrics exposes Prometheus metrics.

Examples:
  hass-search serve
  hass-search serve --addr 127.0.0.1:9000 -s ./snapshot.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default: :8123)")
	opts.env.AddFlags(cmd)
	opts.env.BindFlag("server.addr", "addr")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	env, err := opts.env.Load(cmd)
	if err != nil {
		return err
	}

	srv, err := NewServer(env.Engine, env.Logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", env.Config.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", env.Config.Server.Addr, err)
	}

	ctx, cancel := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	env.Logger.Info("serving related-item searches", "addr", ln.Addr().String(), "snapshot", env.Config.Snapshot)
	return srv.Serve(ctx, ln)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
