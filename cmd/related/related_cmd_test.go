package related

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ccm2020/home-assistant/internal/testhelpers"
	"github.com/ccm2020/home-assistant/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRelatedCommand_JSON(t *testing.T) {
	snapshot := testhelpers.WriteSnapshot(t, testhelpers.LivingRoomSnapshot)

	output, err := execute(t, "scene", "scene.movie_night", "-s", snapshot, "-f", "json")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"area": ["living_room"],
		"config_entry": ["hue_bridge"],
		"device": ["lamp_device", "strip_device"],
		"entity": ["light.floor_lamp", "light.tv_strip"],
		"group": ["group.living_lights"]
	}`, output)
}

func TestRelatedCommand_Text(t *testing.T) {
	snapshot := testhelpers.WriteSnapshot(t, testhelpers.LivingRoomSnapshot)

	output, err := execute(t, "device", "strip_device", "-s", snapshot)
	require.NoError(t, err)

	g := testhelpers.TextGoldie(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestRelatedCommand_DOTIncludesEntryAndFoldedEdges(t *testing.T) {
	snapshot := testhelpers.WriteSnapshot(t, testhelpers.LivingRoomSnapshot)

	output, err := execute(t, "area", "living_room", "-s", snapshot, "-f", "dot")
	require.NoError(t, err)

	assert.Contains(t, output, `"area:living_room" [label="Living Room\nliving_room", fillcolor=palegreen, penwidth=2];`)
	assert.Contains(t, output, `"area:living_room" -> "device:lamp_device";`)
	assert.Contains(t, output, `"device:lamp_device" -> "entity:light.floor_lamp";`)
}

func TestRelatedCommand_NothingRelated(t *testing.T) {
	snapshot := testhelpers.WriteSnapshot(t, testhelpers.LivingRoomSnapshot)

	output, err := execute(t, "script", "script.goodnight", "-s", snapshot)
	require.NoError(t, err)
	assert.Equal(t, "Nothing is related to script script.goodnight.\n", output)
}

func TestRelatedCommand_RejectsUnknownItemType(t *testing.T) {
	_, err := execute(t, "sensor", "sensor.temp", "-s", "does-not-matter.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, search.ErrInvalidKind))
	assert.Contains(t, err.Error(), `"sensor"`)
}

func TestRelatedCommand_RejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "area", "living_room", "-f", "svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: svg")
}

func TestRelatedCommand_MissingSnapshot(t *testing.T) {
	_, err := execute(t, "area", "living_room", "-s", "/nonexistent/snapshot.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load snapshot")
}

func TestRelatedCommand_RequiresTwoArguments(t *testing.T) {
	_, err := execute(t, "area")
	require.Error(t, err)
}
