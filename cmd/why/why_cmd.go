package why

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ccm2020/home-assistant/cmd/cmdutil"
	"github.com/ccm2020/home-assistant/registry"
	"github.com/ccm2020/home-assistant/search"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type whyOptions struct {
	env          cmdutil.EnvironmentOptions
	outputFormat string
}

type step struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type explanation struct {
	From search.Node `json:"from"`
	To   search.Node `json:"to"`
	Path []step      `json:"path"`
}

// Cmd represents the why command.
var Cmd = NewCommand()

// NewCommand returns a new why command instance.
func NewCommand() *cobra.Command {
	opts := &whyOptions{
		outputFormat: formatText,
	}

	cmd := &cobra.Command{
		Use:   "why <item-type> <item-id> <related-type> <related-id>",
		Short: "Show how a related item was reached from the searched item.",
		Long: `Show the chain of relations that made the search for one item report another.

Examples:
  hass-search why scene scene.movie_night area living_room
  hass-search why device lamp_device group group.living_lights -f json`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhy(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		opts.outputFormat,
		fmt.Sprintf("Output format (%s)", supportedFormats()))
	opts.env.AddFlags(cmd)

	return cmd
}

func runWhy(cmd *cobra.Command, opts *whyOptions, args []string) error {
	if !isSupportedFormat(opts.outputFormat) {
		return fmt.Errorf("unknown format: %s (valid options: %s)", opts.outputFormat, supportedFormats())
	}

	from, err := parseNode(args[0], args[1])
	if err != nil {
		return err
	}
	to, err := parseNode(args[2], args[3])
	if err != nil {
		return err
	}

	env, err := opts.env.Load(cmd)
	if err != nil {
		return err
	}

	trace, err := env.Engine.Trace(from.Kind, from.ID)
	if err != nil {
		return err
	}

	path, err := trace.Explain(to)
	if err != nil {
		return err
	}

	result := explanation{From: from, To: to, Path: steps(path, env.Registry)}

	var output string
	switch opts.outputFormat {
	case formatJSON:
		output, err = formatJSONOutput(result)
	default:
		output = formatTextOutput(result)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}

func parseNode(rawKind, id string) (search.Node, error) {
	kind, ok := search.ParseKind(rawKind)
	if !ok {
		return search.Node{}, &search.InvalidKindError{Kind: rawKind}
	}
	return search.Node{Kind: kind, ID: id}, nil
}

func steps(path []search.Node, reg *registry.Registry) []step {
	out := make([]step, 0, len(path))
	for _, n := range path {
		s := step{Type: n.Kind.String(), ID: n.ID}
		if name, ok := reg.Name(n.Kind, n.ID); ok {
			s.Name = name
		}
		out = append(out, s)
	}
	return out
}

func formatTextOutput(e explanation) string {
	var sb strings.Builder
	if e.From == e.To {
		sb.WriteString(fmt.Sprintf("%s %s is the searched item.\n", e.From.Kind, e.From.ID))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%s %s is related to %s %s:\n", e.To.Kind, e.To.ID, e.From.Kind, e.From.ID))
	for i, s := range e.Path {
		prefix := "  -> "
		if i == 0 {
			prefix = "     "
		}
		sb.WriteString(fmt.Sprintf("%s%s %s", prefix, s.Type, s.ID))
		if s.Name != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", s.Name))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatJSONOutput(e explanation) (string, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func supportedFormats() string {
	return strings.Join([]string{formatText, formatJSON}, ", ")
}

func isSupportedFormat(format string) bool {
	return format == formatText || format == formatJSON
}
