package watch

import (
	"log/slog"
	"time"

	"github.com/ccm2020/home-assistant/cmd/cmdutil"
	"github.com/ccm2020/home-assistant/cmd/related/formatters"
	"github.com/ccm2020/home-assistant/cmd/related/formatters/dot"
	"github.com/ccm2020/home-assistant/cmd/watch/protocol"
	"github.com/ccm2020/home-assistant/registry"
	"github.com/ccm2020/home-assistant/search"
)

// renderGraph runs the search from entry and renders it as a DOT snapshot.
func renderGraph(reg *registry.Registry, engine *search.Engine, entry search.Node) protocol.GraphSnapshot {
	snapshot := protocol.GraphSnapshot{
		Timestamp: time.Now().UTC(),
		Entry:     entry.String(),
	}

	trace, err := engine.Trace(entry.Kind, entry.ID)
	if err != nil {
		snapshot.Error = err.Error()
		return snapshot
	}

	doc, err := formatters.NewDocument(trace, reg)
	if err != nil {
		snapshot.Error = err.Error()
		return snapshot
	}

	out, err := (&dot.Formatter{}).Format(doc)
	if err != nil {
		snapshot.Error = err.Error()
		return snapshot
	}

	snapshot.DOT = out
	snapshot.Related = trace.Results.Len()
	return snapshot
}

// reloadGraph reloads the snapshot file and renders the search again.
// A snapshot that fails to load is reported in the graph snapshot.
func reloadGraph(path string, entry search.Node, logger *slog.Logger) protocol.GraphSnapshot {
	reg, engine, err := cmdutil.OpenSnapshot(path, logger)
	if err != nil {
		return protocol.GraphSnapshot{
			Timestamp: time.Now().UTC(),
			Entry:     entry.String(),
			Error:     err.Error(),
		}
	}
	return renderGraph(reg, engine, entry)
}
