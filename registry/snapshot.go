package registry

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is the serialized configuration a Registry is built from.
// JSON documents are accepted as well since they are valid YAML.
type Snapshot struct {
	Areas         []Area        `yaml:"areas" json:"areas"`
	ConfigEntries []ConfigEntry `yaml:"config_entries" json:"config_entries"`
	Devices       []Device      `yaml:"devices" json:"devices"`
	Entities      []Entity      `yaml:"entities" json:"entities"`
	Scenes        []Scene       `yaml:"scenes" json:"scenes"`
	Groups        []Group       `yaml:"groups" json:"groups"`
	Automations   []Automation  `yaml:"automations" json:"automations"`
	Scripts       []Script      `yaml:"scripts" json:"scripts"`
}

// Area is a room or zone devices can be assigned to.
type Area struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// ConfigEntry is a configured integration instance.
type ConfigEntry struct {
	ID     string `yaml:"id" json:"id"`
	Domain string `yaml:"domain,omitempty" json:"domain,omitempty"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
}

// Device is a device registry entry.
type Device struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name,omitempty" json:"name,omitempty"`
	AreaID        string   `yaml:"area_id,omitempty" json:"area_id,omitempty"`
	ConfigEntries []string `yaml:"config_entries,omitempty" json:"config_entries,omitempty"`
	ViaDeviceID   string   `yaml:"via_device_id,omitempty" json:"via_device_id,omitempty"`
}

// Entity is an entity registry entry.
type Entity struct {
	EntityID      string `yaml:"entity_id" json:"entity_id"`
	Name          string `yaml:"name,omitempty" json:"name,omitempty"`
	Platform      string `yaml:"platform,omitempty" json:"platform,omitempty"`
	DeviceID      string `yaml:"device_id,omitempty" json:"device_id,omitempty"`
	ConfigEntryID string `yaml:"config_entry_id,omitempty" json:"config_entry_id,omitempty"`
}

// Scene stores the state it restores for each captured entity.
type Scene struct {
	EntityID string         `yaml:"entity_id" json:"entity_id"`
	Name     string         `yaml:"name,omitempty" json:"name,omitempty"`
	Entities map[string]any `yaml:"entities,omitempty" json:"entities,omitempty"`
}

// Group lists its direct member entities.
type Group struct {
	EntityID string   `yaml:"entity_id" json:"entity_id"`
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Entities []string `yaml:"entities,omitempty" json:"entities,omitempty"`
}

// Automation is known by its entity id only.
type Automation struct {
	EntityID string `yaml:"entity_id" json:"entity_id"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Script is known by its entity id only.
type Script struct {
	EntityID string `yaml:"entity_id" json:"entity_id"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Decode reads a snapshot document. Unknown fields are rejected.
func Decode(r io.Reader) (*Snapshot, error) {
	var snapshot Snapshot

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&snapshot); err != nil {
		if errors.Is(err, io.EOF) {
			return &snapshot, nil
		}
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snapshot, nil
}

// Load reads the snapshot file at path and builds a Registry from it.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	snapshot, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	reg, err := New(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}
