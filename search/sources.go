package search

// Device is the part of a device registry entry the search reads.
type Device struct {
	ID             string
	AreaID         string
	ConfigEntryIDs []string
	// ViaDeviceID is exposed by registries but never followed by the search.
	ViaDeviceID string
}

// Entity is the part of an entity registry entry the search reads.
type Entity struct {
	EntityID      string
	DeviceID      string
	ConfigEntryID string
}

// DeviceRegistry answers device queries. Unknown ids yield empty results.
type DeviceRegistry interface {
	Device(deviceID string) (Device, bool)
	DevicesInArea(areaID string) []Device
	DevicesForConfigEntry(configEntryID string) []Device
}

// EntityRegistry answers entity queries. Unknown ids yield empty results.
type EntityRegistry interface {
	Entity(entityID string) (Entity, bool)
	EntitiesOfDevice(deviceID string) []Entity
	EntitiesForConfigEntry(configEntryID string) []Entity
}

// SceneIndex knows which entities each scene captures in its stored state.
type SceneIndex interface {
	ScenesWithEntity(entityID string) []string
	EntitiesInScene(sceneEntityID string) []string
}

// GroupIndex knows the direct members of each group.
type GroupIndex interface {
	GroupsWithEntity(entityID string) []string
	EntitiesInGroup(groupEntityID string) []string
}

// Sources bundles the read-only collaborators a search queries.
type Sources struct {
	Devices  DeviceRegistry
	Entities EntityRegistry
	Scenes   SceneIndex
	Groups   GroupIndex
}

// Provider is implemented by a single store that can answer every query.
type Provider interface {
	DeviceRegistry
	EntityRegistry
	SceneIndex
	GroupIndex
}

// SourcesFrom uses one provider for every collaborator.
func SourcesFrom(p Provider) Sources {
	return Sources{
		Devices:  p,
		Entities: p,
		Scenes:   p,
		Groups:   p,
	}
}
