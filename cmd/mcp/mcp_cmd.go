package mcp

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ccm2020/home-assistant/cmd/cmdutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

type mcpOptions struct {
	env cmdutil.EnvironmentOptions
}

// Cmd represents the mcp command.
var Cmd = NewCommand()

// NewCommand returns a new mcp command instance.
func NewCommand() *cobra.Command {
	opts := &mcpOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run a Model Context Protocol server on stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing the
search_related and explain_relation tools. Logs go to stderr.

Examples:
  hass-search mcp -s ./snapshot.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCP(cmd, opts)
		},
	}

	opts.env.AddFlags(cmd)

	return cmd
}

func runMCP(cmd *cobra.Command, opts *mcpOptions) error {
	env, err := opts.env.Load(cmd)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := NewMCPServer(env.Engine, env.Registry, cmd.Root().Version)
	env.Logger.Info("mcp server started", "snapshot", env.Config.Snapshot)
	return server.Run(ctx, &mcp.StdioTransport{})
}
