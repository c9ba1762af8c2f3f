package cmd

import (
	"os"
	"strconv"

	"github.com/ccm2020/home-assistant/cmd/kinds"
	"github.com/ccm2020/home-assistant/cmd/mcp"
	"github.com/ccm2020/home-assistant/cmd/related"
	"github.com/ccm2020/home-assistant/cmd/serve"
	"github.com/ccm2020/home-assistant/cmd/watch"
	"github.com/ccm2020/home-assistant/cmd/why"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// devCommands is set via build-time ldflags ("true" for development builds)
var devCommands = "false"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hass-search",
	Short: "Find everything related to an item of a Home Assistant configuration",
	Long: `hass-search answers "what is related to this item?" for a Home Assistant
configuration snapshot. Starting from an area, device, entity, scene, group,
automation, script or config entry it reports every related item, grouped by type.

Use 'hass-search --help' to see all available commands, or 'hass-search <command> --help'
for detailed information about a specific command.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func isDevelopmentBuild(flag string) bool {
	enabled, err := strconv.ParseBool(flag)
	return err == nil && enabled
}

func newRootCommandSet() []*cobra.Command {
	return []*cobra.Command{
		related.Cmd,
		why.Cmd,
		kinds.Cmd,
		serve.Cmd,
		mcp.Cmd,
		watch.Cmd,
	}
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(newRootCommandSet()...)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version
	if isDevelopmentBuild(devCommands) {
		rootCmd.Version += " (development build)"
	}

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
