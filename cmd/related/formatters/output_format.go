package formatters

import "strings"

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatText    OutputFormat = "text"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatMermaid OutputFormat = "mermaid"
)

var outputFormats = []OutputFormat{
	OutputFormatText,
	OutputFormatJSON,
	OutputFormatDOT,
	OutputFormatMermaid,
}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat converts a format name into an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	for _, f := range outputFormats {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// SupportedFormats returns the supported format names, comma separated.
func SupportedFormats() string {
	names := make([]string, 0, len(outputFormats))
	for _, f := range outputFormats {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
