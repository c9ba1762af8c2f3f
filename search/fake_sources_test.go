package search

// fakeSources is an in-memory collaborator set for engine tests.
type fakeSources struct {
	devices  map[string]Device
	entities map[string]Entity
	scenes   map[string][]string
	groups   map[string][]string
}

func newFakeSources() *fakeSources {
	return &fakeSources{
		devices:  make(map[string]Device),
		entities: make(map[string]Entity),
		scenes:   make(map[string][]string),
		groups:   make(map[string][]string),
	}
}

func (f *fakeSources) addDevice(d Device) *fakeSources {
	f.devices[d.ID] = d
	return f
}

func (f *fakeSources) addEntity(e Entity) *fakeSources {
	f.entities[e.EntityID] = e
	return f
}

func (f *fakeSources) addScene(sceneID string, members ...string) *fakeSources {
	f.scenes[sceneID] = members
	return f
}

func (f *fakeSources) addGroup(groupID string, members ...string) *fakeSources {
	f.groups[groupID] = members
	return f
}

func (f *fakeSources) Device(deviceID string) (Device, bool) {
	d, ok := f.devices[deviceID]
	return d, ok
}

func (f *fakeSources) DevicesInArea(areaID string) []Device {
	var out []Device
	for _, d := range f.devices {
		if d.AreaID == areaID {
			out = append(out, d)
		}
	}
	return out
}

func (f *fakeSources) DevicesForConfigEntry(configEntryID string) []Device {
	var out []Device
	for _, d := range f.devices {
		for _, id := range d.ConfigEntryIDs {
			if id == configEntryID {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func (f *fakeSources) Entity(entityID string) (Entity, bool) {
	e, ok := f.entities[entityID]
	return e, ok
}

func (f *fakeSources) EntitiesOfDevice(deviceID string) []Entity {
	var out []Entity
	for _, e := range f.entities {
		if e.DeviceID == deviceID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeSources) EntitiesForConfigEntry(configEntryID string) []Entity {
	var out []Entity
	for _, e := range f.entities {
		if e.ConfigEntryID == configEntryID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeSources) ScenesWithEntity(entityID string) []string {
	return containing(f.scenes, entityID)
}

func (f *fakeSources) EntitiesInScene(sceneEntityID string) []string {
	return f.scenes[sceneEntityID]
}

func (f *fakeSources) GroupsWithEntity(entityID string) []string {
	return containing(f.groups, entityID)
}

func (f *fakeSources) EntitiesInGroup(groupEntityID string) []string {
	return f.groups[groupEntityID]
}

func containing(memberships map[string][]string, entityID string) []string {
	var out []string
	for owner, members := range memberships {
		for _, member := range members {
			if member == entityID {
				out = append(out, owner)
				break
			}
		}
	}
	return out
}

func (f *fakeSources) engine() *Engine {
	return NewEngine(SourcesFrom(f))
}

// sorted flattens results for comparisons.
func sorted(r Results) map[string][]string {
	return r.Sorted()
}
