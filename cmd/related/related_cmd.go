package related

import (
	"fmt"

	"github.com/ccm2020/home-assistant/cmd/cmdutil"
	"github.com/ccm2020/home-assistant/cmd/related/formatters"
	"github.com/ccm2020/home-assistant/search"
	"github.com/spf13/cobra"
)

type relatedOptions struct {
	env          cmdutil.EnvironmentOptions
	outputFormat string
}

// Cmd represents the related command.
var Cmd = NewCommand()

// NewCommand returns a new related command instance.
func NewCommand() *cobra.Command {
	opts := &relatedOptions{
		outputFormat: formatters.OutputFormatText.String(),
	}

	cmd := &cobra.Command{
		Use:   "related <item-type> <item-id>",
		Short: "List every item related to an area, device, entity, scene, group, automation, script or config entry.",
		Long: fmt.Sprintf(`List every item related to the given item in a configuration snapshot.

Item types: %s

Examples:
  hass-search related device 1f3c9a
  hass-search related scene scene.movie_night -f json
  hass-search related area living_room -f dot -s ./snapshot.yaml`, search.SupportedKindNames()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelated(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		opts.outputFormat,
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	opts.env.AddFlags(cmd)

	return cmd
}

func runRelated(cmd *cobra.Command, opts *relatedOptions, rawKind, id string) error {
	formatter, err := NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	kind, ok := search.ParseKind(rawKind)
	if !ok {
		return &search.InvalidKindError{Kind: rawKind}
	}

	env, err := opts.env.Load(cmd)
	if err != nil {
		return err
	}

	trace, err := env.Engine.Trace(kind, id)
	if err != nil {
		return err
	}

	doc, err := formatters.NewDocument(trace, env.Registry)
	if err != nil {
		return err
	}

	output, err := formatter.Format(doc)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}
