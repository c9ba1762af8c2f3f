package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// LivingRoomSnapshot is a small home: one area, one integration, two devices
// (one connected via the other), a scene, a group, an automation and a script.
const LivingRoomSnapshot = `
areas:
  - id: living_room
    name: Living Room
config_entries:
  - id: hue_bridge
    domain: hue
    title: Philips Hue
devices:
  - id: lamp_device
    name: Floor lamp
    area_id: living_room
    config_entries: [hue_bridge]
  - id: strip_device
    area_id: living_room
    config_entries: [hue_bridge]
    via_device_id: lamp_device
entities:
  - entity_id: light.floor_lamp
    device_id: lamp_device
    config_entry_id: hue_bridge
  - entity_id: light.tv_strip
    device_id: strip_device
    config_entry_id: hue_bridge
scenes:
  - entity_id: scene.movie_night
    name: Movie night
    entities:
      light.floor_lamp:
        state: "off"
      light.tv_strip:
        state: "on"
        brightness: 40
groups:
  - entity_id: group.living_lights
    entities: [light.tv_strip, light.floor_lamp]
automations:
  - entity_id: automation.sunset
scripts:
  - entity_id: script.goodnight
    name: Goodnight
`

// WriteSnapshot writes content to a snapshot file in a temporary directory and returns its path.
func WriteSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
