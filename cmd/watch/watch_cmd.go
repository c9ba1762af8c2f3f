package watch

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ccm2020/home-assistant/cmd/cmdutil"
	"github.com/ccm2020/home-assistant/search"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	env      cmdutil.EnvironmentOptions
	port     int
	debounce time.Duration
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <item-type> <item-id>",
		Short: "Watch the snapshot and serve a live graph of related items",
		Long: `Watch the configuration snapshot for changes, re-run the search for the given
item, and serve a live-updating visualization at localhost.

Examples:
  hass-search watch area living_room
  hass-search watch device lamp_device -P 5000 --debounce 1s`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "P", 0, "HTTP server port (default: 4900)")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", 0, "Quiet period before rebuilding after a change (default: 300ms)")
	opts.env.AddFlags(cmd)
	opts.env.BindFlag("watch.port", "port")
	opts.env.BindFlag("watch.debounce", "debounce")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions, rawKind, id string) error {
	kind, ok := search.ParseKind(rawKind)
	if !ok {
		return &search.InvalidKindError{Kind: rawKind}
	}
	entry := search.Node{Kind: kind, ID: id}

	env, err := opts.env.Load(cmd)
	if err != nil {
		return err
	}

	snapshotPath, err := filepath.Abs(env.Config.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to resolve snapshot path: %w", err)
	}

	initial := renderGraph(env.Registry, env.Engine, entry)
	if initial.Error != "" {
		return fmt.Errorf("initial graph build failed: %s", initial.Error)
	}

	b := newBroker()
	b.publish(initial)

	port := env.Config.Watch.Port
	srv := newServer(b, port)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	go srv.Serve(ln)

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for %s\n", snapshotPath, entry)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving at http://localhost:%d\n", port)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	rebuild := func() {
		snapshot := b.publish(reloadGraph(snapshotPath, entry, env.Logger))
		if snapshot.Error != "" {
			env.Logger.Warn("graph rebuild failed", "error", snapshot.Error)
			return
		}
		env.Logger.Info("graph rebuilt", "id", snapshot.ID, "related", snapshot.Related)
	}

	err = watchAndRebuild(ctx, snapshotPath, env.Config.Watch.Debounce, rebuild, env.Logger)

	srv.Close()
	return err
}
