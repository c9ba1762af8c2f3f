package registry

import (
	"errors"
	"fmt"

	"github.com/ccm2020/home-assistant/search"
	"github.com/tidwall/btree"
)

var (
	// ErrDuplicateID is returned when one collection lists the same id twice.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidEntityID is returned for entity ids that are empty, have no domain,
	// or belong to the wrong domain for their collection.
	ErrInvalidEntityID = errors.New("invalid entity id")
	// ErrMissingID is returned for records without an id.
	ErrMissingID = errors.New("missing id")
)

var _ search.Provider = (*Registry)(nil)

// Registry is a read-only, in-memory view of a configuration snapshot that
// answers every query the search engine makes. References to ids that are not
// part of the snapshot are kept and simply resolve to nothing.
//
// A Registry is never mutated after New returns and is safe for concurrent readers.
type Registry struct {
	areas         map[string]Area
	configEntries map[string]ConfigEntry
	devices       map[string]Device
	entities      map[string]Entity
	scenes        map[string]Scene
	groups        map[string]Group
	automations   map[string]Automation
	scripts       map[string]Script

	devicesByArea         index
	devicesByConfigEntry  index
	entitiesByDevice      index
	entitiesByConfigEntry index
	sceneMembers          index
	scenesByEntity        index
	groupMembers          index
	groupsByEntity        index
}

// Stats holds the number of records per collection.
type Stats struct {
	Areas         int
	ConfigEntries int
	Devices       int
	Entities      int
	Scenes        int
	Groups        int
	Automations   int
	Scripts       int
}

// New validates a snapshot and builds its lookup indexes.
func New(snapshot *Snapshot) (*Registry, error) {
	if snapshot == nil {
		snapshot = &Snapshot{}
	}

	r := &Registry{
		areas:         make(map[string]Area, len(snapshot.Areas)),
		configEntries: make(map[string]ConfigEntry, len(snapshot.ConfigEntries)),
		devices:       make(map[string]Device, len(snapshot.Devices)),
		entities:      make(map[string]Entity, len(snapshot.Entities)),
		scenes:        make(map[string]Scene, len(snapshot.Scenes)),
		groups:        make(map[string]Group, len(snapshot.Groups)),
		automations:   make(map[string]Automation, len(snapshot.Automations)),
		scripts:       make(map[string]Script, len(snapshot.Scripts)),
	}

	for _, area := range snapshot.Areas {
		if err := insert(r.areas, "area", area.ID, area); err != nil {
			return nil, err
		}
	}

	for _, entry := range snapshot.ConfigEntries {
		if err := insert(r.configEntries, "config entry", entry.ID, entry); err != nil {
			return nil, err
		}
	}

	for _, device := range snapshot.Devices {
		if err := insert(r.devices, "device", device.ID, device); err != nil {
			return nil, err
		}
		if device.AreaID != "" {
			r.devicesByArea.add(device.AreaID, device.ID)
		}
		for _, entryID := range device.ConfigEntries {
			r.devicesByConfigEntry.add(entryID, device.ID)
		}
	}

	for _, entity := range snapshot.Entities {
		if err := validateEntityID("entity", entity.EntityID, ""); err != nil {
			return nil, err
		}
		if err := insert(r.entities, "entity", entity.EntityID, entity); err != nil {
			return nil, err
		}
		if entity.DeviceID != "" {
			r.entitiesByDevice.add(entity.DeviceID, entity.EntityID)
		}
		if entity.ConfigEntryID != "" {
			r.entitiesByConfigEntry.add(entity.ConfigEntryID, entity.EntityID)
		}
	}

	for _, scene := range snapshot.Scenes {
		if err := validateEntityID("scene", scene.EntityID, "scene"); err != nil {
			return nil, err
		}
		if err := insert(r.scenes, "scene", scene.EntityID, scene); err != nil {
			return nil, err
		}
		for member := range scene.Entities {
			r.sceneMembers.add(scene.EntityID, member)
			r.scenesByEntity.add(member, scene.EntityID)
		}
	}

	for _, group := range snapshot.Groups {
		if err := validateEntityID("group", group.EntityID, "group"); err != nil {
			return nil, err
		}
		if err := insert(r.groups, "group", group.EntityID, group); err != nil {
			return nil, err
		}
		for _, member := range group.Entities {
			r.groupMembers.add(group.EntityID, member)
			r.groupsByEntity.add(member, group.EntityID)
		}
	}

	for _, automation := range snapshot.Automations {
		if err := validateEntityID("automation", automation.EntityID, "automation"); err != nil {
			return nil, err
		}
		if err := insert(r.automations, "automation", automation.EntityID, automation); err != nil {
			return nil, err
		}
	}

	for _, script := range snapshot.Scripts {
		if err := validateEntityID("script", script.EntityID, "script"); err != nil {
			return nil, err
		}
		if err := insert(r.scripts, "script", script.EntityID, script); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func insert[T any](records map[string]T, what, id string, record T) error {
	if id == "" {
		return fmt.Errorf("%w: %s", ErrMissingID, what)
	}
	if _, ok := records[id]; ok {
		return fmt.Errorf("%w: %s %q", ErrDuplicateID, what, id)
	}
	records[id] = record
	return nil
}

func validateEntityID(what, entityID, wantDomain string) error {
	if entityID == "" {
		return fmt.Errorf("%w: %s", ErrMissingID, what)
	}
	domain, objectID := search.SplitEntityID(entityID)
	if domain == "" || objectID == "" {
		return fmt.Errorf("%w: %s %q is not in <domain>.<object_id> form", ErrInvalidEntityID, what, entityID)
	}
	if wantDomain != "" && domain != wantDomain {
		return fmt.Errorf("%w: %s %q must be in the %s domain", ErrInvalidEntityID, what, entityID, wantDomain)
	}
	return nil
}

// Stats returns the number of records per collection.
func (r *Registry) Stats() Stats {
	return Stats{
		Areas:         len(r.areas),
		ConfigEntries: len(r.configEntries),
		Devices:       len(r.devices),
		Entities:      len(r.entities),
		Scenes:        len(r.scenes),
		Groups:        len(r.groups),
		Automations:   len(r.automations),
		Scripts:       len(r.scripts),
	}
}

// Device returns the device registered under deviceID.
func (r *Registry) Device(deviceID string) (search.Device, bool) {
	device, ok := r.devices[deviceID]
	if !ok {
		return search.Device{}, false
	}
	return toSearchDevice(device), true
}

// DevicesInArea returns the devices assigned to areaID, ordered by id.
func (r *Registry) DevicesInArea(areaID string) []search.Device {
	return r.lookupDevices(r.devicesByArea.values(areaID))
}

// DevicesForConfigEntry returns the devices registered by configEntryID, ordered by id.
func (r *Registry) DevicesForConfigEntry(configEntryID string) []search.Device {
	return r.lookupDevices(r.devicesByConfigEntry.values(configEntryID))
}

func (r *Registry) lookupDevices(ids []string) []search.Device {
	devices := make([]search.Device, 0, len(ids))
	for _, id := range ids {
		devices = append(devices, toSearchDevice(r.devices[id]))
	}
	return devices
}

func toSearchDevice(d Device) search.Device {
	return search.Device{
		ID:             d.ID,
		AreaID:         d.AreaID,
		ConfigEntryIDs: append([]string(nil), d.ConfigEntries...),
		ViaDeviceID:    d.ViaDeviceID,
	}
}

// Entity returns the entity registered under entityID.
func (r *Registry) Entity(entityID string) (search.Entity, bool) {
	entity, ok := r.entities[entityID]
	if !ok {
		return search.Entity{}, false
	}
	return toSearchEntity(entity), true
}

// EntitiesOfDevice returns the entities belonging to deviceID, ordered by entity id.
func (r *Registry) EntitiesOfDevice(deviceID string) []search.Entity {
	return r.lookupEntities(r.entitiesByDevice.values(deviceID))
}

// EntitiesForConfigEntry returns the entities registered by configEntryID, ordered by entity id.
func (r *Registry) EntitiesForConfigEntry(configEntryID string) []search.Entity {
	return r.lookupEntities(r.entitiesByConfigEntry.values(configEntryID))
}

func (r *Registry) lookupEntities(ids []string) []search.Entity {
	entities := make([]search.Entity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, toSearchEntity(r.entities[id]))
	}
	return entities
}

func toSearchEntity(e Entity) search.Entity {
	return search.Entity{
		EntityID:      e.EntityID,
		DeviceID:      e.DeviceID,
		ConfigEntryID: e.ConfigEntryID,
	}
}

// ScenesWithEntity returns the scenes whose stored state includes entityID.
func (r *Registry) ScenesWithEntity(entityID string) []string {
	return r.scenesByEntity.values(entityID)
}

// EntitiesInScene returns the entities captured by a scene.
func (r *Registry) EntitiesInScene(sceneEntityID string) []string {
	return r.sceneMembers.values(sceneEntityID)
}

// GroupsWithEntity returns the groups that list entityID as a direct member.
func (r *Registry) GroupsWithEntity(entityID string) []string {
	return r.groupsByEntity.values(entityID)
}

// EntitiesInGroup returns the direct members of a group.
func (r *Registry) EntitiesInGroup(groupEntityID string) []string {
	return r.groupMembers.values(groupEntityID)
}

// Name returns the display name recorded for an item, if any.
func (r *Registry) Name(kind search.Kind, id string) (string, bool) {
	var name string
	switch kind {
	case search.KindArea:
		name = r.areas[id].Name
	case search.KindConfigEntry:
		name = r.configEntries[id].Title
	case search.KindDevice:
		name = r.devices[id].Name
	case search.KindEntity:
		name = r.entities[id].Name
	case search.KindScene:
		name = r.scenes[id].Name
	case search.KindGroup:
		name = r.groups[id].Name
	case search.KindAutomation:
		name = r.automations[id].Name
	case search.KindScript:
		name = r.scripts[id].Name
	}
	return name, name != ""
}

// index maps a key to an ordered set of ids.
type index struct {
	m btree.Map[string, *btree.Set[string]]
}

func (ix *index) add(key, id string) {
	set, ok := ix.m.Get(key)
	if !ok {
		set = &btree.Set[string]{}
		ix.m.Set(key, set)
	}
	set.Insert(id)
}

func (ix *index) values(key string) []string {
	set, ok := ix.m.Get(key)
	if !ok {
		return nil
	}
	return set.Keys()
}
