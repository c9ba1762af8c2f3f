package dot_test

import (
	"strings"
	"testing"

	"github.com/ccm2020/home-assistant/cmd/related/formatters"
	"github.com/ccm2020/home-assistant/cmd/related/formatters/dot"
	"github.com/ccm2020/home-assistant/internal/testhelpers"
	"github.com/ccm2020/home-assistant/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type names map[search.Node]string

func (n names) Name(kind search.Kind, id string) (string, bool) {
	name, ok := n[search.Node{Kind: kind, ID: id}]
	return name, ok
}

func TestFormatter_DeviceEntryPoint(t *testing.T) {
	d1 := search.Node{Kind: search.KindDevice, ID: "D1"}
	a1 := search.Node{Kind: search.KindArea, ID: "A1"}
	c1 := search.Node{Kind: search.KindConfigEntry, ID: "C1"}
	light := search.Node{Kind: search.KindEntity, ID: "light.a"}

	doc := formatters.Document{
		Entry: d1,
		Results: search.Results{
			search.KindArea:        search.IDSet{"A1": {}},
			search.KindConfigEntry: search.IDSet{"C1": {}},
			search.KindEntity:      search.IDSet{"light.a": {}},
		},
		Edges: []search.Edge{
			{From: d1, To: a1},
			{From: d1, To: light},
			{From: light, To: c1},
		},
		Names: names{a1: "Living Room"},
	}

	output, err := (&dot.Formatter{}).Format(doc)
	require.NoError(t, err)

	g := testhelpers.DotGoldie(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestFormatter_EmptyResults(t *testing.T) {
	doc := formatters.Document{
		Entry:   search.Node{Kind: search.KindAutomation, ID: "automation.x"},
		Results: search.Results{},
	}

	output, err := (&dot.Formatter{}).Format(doc)
	require.NoError(t, err)

	assert.Contains(t, output, `"automation:automation.x" [label="automation.x", fillcolor=lightsalmon, penwidth=2];`)
	assert.NotContains(t, output, "->")
	assert.True(t, strings.HasSuffix(output, "}\n"))
}

func TestFormatter_EscapesQuotesInNames(t *testing.T) {
	area := search.Node{Kind: search.KindArea, ID: "den"}
	doc := formatters.Document{
		Entry:   area,
		Results: search.Results{},
		Names:   names{area: `The "Den"`},
	}

	output, err := (&dot.Formatter{}).Format(doc)
	require.NoError(t, err)
	assert.Contains(t, output, `label="The \"Den\"\nden"`)
}
