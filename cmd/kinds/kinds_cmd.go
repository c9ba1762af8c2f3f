package kinds

import (
	"fmt"

	"github.com/ccm2020/home-assistant/search"
	"github.com/spf13/cobra"
)

// Cmd represents the kinds command.
var Cmd = NewCommand()

// NewCommand returns a new kinds command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List all supported item types",
		Long: `List the item types a search can start from. Terminal types are reported
when reached but only expanded when they are the searched item.

Examples:
  hass-search kinds`,
		Args: cobra.NoArgs,
		RunE: runKinds,
	}

	return cmd
}

func runKinds(cmd *cobra.Command, _ []string) error {
	for _, kind := range search.SupportedKinds() {
		line := kind.String()
		if kind.IsTerminal() {
			line += " (terminal)"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}

	return nil
}
