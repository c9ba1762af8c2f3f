package search

import (
	"errors"
	"fmt"
	"log/slog"

	graphlib "github.com/dominikbraun/graph"
)

// Engine finds the items related to one entry item of the configuration graph.
//
// Scenes, scripts, automations, groups, areas and config entries are only
// expanded when they are the entry point. Discovered elsewhere they are
// recorded as results but not explored further.
//
// An Engine holds no search state and is safe for concurrent use; every call
// builds its own traversal.
type Engine struct {
	sources Sources
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-search debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine that queries the given collaborators.
func NewEngine(sources Sources, opts ...Option) *Engine {
	e := &Engine{
		sources: sources,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search returns every item related to (kind, id), partitioned by kind.
// The entry item itself is never part of the result, and kinds without
// results are omitted. An id that does not exist simply has no relations.
func (e *Engine) Search(kind Kind, id string) (Results, error) {
	t, err := e.run(kind, id, false)
	if err != nil {
		return nil, err
	}
	return t.results, nil
}

// Trace runs the same search as Search and also keeps the discovery tree.
func (e *Engine) Trace(kind Kind, id string) (*Trace, error) {
	t, err := e.run(kind, id, true)
	if err != nil {
		return nil, err
	}
	return &Trace{
		Entry:   Node{Kind: kind, ID: id},
		Results: t.results,
		graph:   t.trace,
	}, nil
}

func (e *Engine) run(kind Kind, id string, withTrace bool) (*traversal, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := e.sources.validate(); err != nil {
		return nil, err
	}

	t := newTraversal(e.sources, withTrace)
	if err := t.run(Node{Kind: kind, ID: id}); err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", Node{Kind: kind, ID: id}, err)
	}

	e.logger.Debug("related search finished",
		"item_type", kind,
		"item_id", id,
		"expanded", t.expanded,
		"results", t.results.Len(),
	)
	return t, nil
}

func (s Sources) validate() error {
	switch {
	case s.Devices == nil:
		return errors.New("device registry is required")
	case s.Entities == nil:
		return errors.New("entity registry is required")
	case s.Scenes == nil:
		return errors.New("scene index is required")
	case s.Groups == nil:
		return errors.New("group index is required")
	}
	return nil
}

// adjacency maps every kind to the rule that discovers its direct relations.
var adjacency = map[Kind]func(*traversal, string){
	KindArea:        (*traversal).resolveArea,
	KindDevice:      (*traversal).resolveDevice,
	KindEntity:      (*traversal).resolveEntity,
	KindAutomation:  (*traversal).resolveAutomation,
	KindScript:      (*traversal).resolveScript,
	KindGroup:       (*traversal).resolveGroup,
	KindScene:       (*traversal).resolveScene,
	KindConfigEntry: (*traversal).resolveConfigEntry,
}

// traversal is the state of a single search.
type traversal struct {
	sources  Sources
	results  Results
	pending  []Node
	current  Node
	expanded int
	trace    graphlib.Graph[string, Node]
	traceErr error
}

func newTraversal(sources Sources, withTrace bool) *traversal {
	t := &traversal{
		sources: sources,
		results: make(Results),
	}
	if withTrace {
		t.trace = graphlib.New(Node.String, graphlib.Directed())
	}
	return t
}

func (t *traversal) run(entry Node) error {
	// The entry point is always expanded, whatever its kind.
	t.results.add(entry.Kind, entry.ID)
	t.pending = append(t.pending, entry)
	t.recordVertex(entry)

	for len(t.pending) > 0 {
		last := len(t.pending) - 1
		t.current = t.pending[last]
		t.pending = t.pending[:last]

		adjacency[t.current.Kind](t, t.current.ID)
		t.expanded++
	}
	if t.traceErr != nil {
		return t.traceErr
	}

	// Scenes, scripts, automations and groups are entities too. Report them
	// only under their specific kind.
	entities := t.results[KindEntity]
	for _, specific := range specificEntityKinds {
		for id := range t.results[specific] {
			delete(entities, id)
		}
	}

	// An entity entry and its specific counterpart are the same item.
	delete(t.results[entry.Kind], entry.ID)
	if entry.Kind == KindEntity {
		domain, _ := SplitEntityID(entry.ID)
		if specific, ok := entityDomainKinds[domain]; ok {
			delete(t.results[specific], entry.ID)
		}
	}

	for kind, bucket := range t.results {
		if len(bucket) == 0 {
			delete(t.results, kind)
		}
	}
	return nil
}

// addOrResolve records a discovered item and schedules it for expansion
// unless it was seen before or its kind is terminal.
func (t *traversal) addOrResolve(kind Kind, id string) {
	if !t.results.add(kind, id) {
		return
	}

	node := Node{Kind: kind, ID: id}
	t.recordVertex(node)
	t.recordEdge(t.current, node)

	if !kind.IsTerminal() {
		t.pending = append(t.pending, node)
	}
}

func (t *traversal) recordVertex(n Node) {
	if t.trace == nil || t.traceErr != nil {
		return
	}
	if err := t.trace.AddVertex(n); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		t.traceErr = fmt.Errorf("failed to record %s: %w", n, err)
	}
}

func (t *traversal) recordEdge(from, to Node) {
	if t.trace == nil || t.traceErr != nil {
		return
	}
	if err := t.trace.AddEdge(from.String(), to.String()); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
		t.traceErr = fmt.Errorf("failed to record %s -> %s: %w", from, to, err)
	}
}

func (t *traversal) resolveArea(areaID string) {
	for _, device := range t.sources.Devices.DevicesInArea(areaID) {
		t.addOrResolve(KindDevice, device.ID)
	}
}

func (t *traversal) resolveDevice(deviceID string) {
	if device, ok := t.sources.Devices.Device(deviceID); ok {
		if device.AreaID != "" {
			t.addOrResolve(KindArea, device.AreaID)
		}
		for _, configEntryID := range device.ConfigEntryIDs {
			t.addOrResolve(KindConfigEntry, configEntryID)
		}
		// The via device is a transport detail, not related data.
	}

	for _, entity := range t.sources.Entities.EntitiesOfDevice(deviceID) {
		t.addOrResolve(KindEntity, entity.EntityID)
	}
	// TODO: find automations that reference this device once automations expose their device references.
}

func (t *traversal) resolveEntity(entityID string) {
	for _, scene := range t.sources.Scenes.ScenesWithEntity(entityID) {
		t.addOrResolve(KindEntity, scene)
	}
	for _, group := range t.sources.Groups.GroupsWithEntity(entityID) {
		t.addOrResolve(KindEntity, group)
	}

	if entity, ok := t.sources.Entities.Entity(entityID); ok {
		if entity.DeviceID != "" {
			t.addOrResolve(KindDevice, entity.DeviceID)
		}
		if entity.ConfigEntryID != "" {
			t.addOrResolve(KindConfigEntry, entity.ConfigEntryID)
		}
	}

	domain, _ := SplitEntityID(entityID)
	if kind, ok := entityDomainKinds[domain]; ok {
		t.addOrResolve(kind, entityID)
	}
}

// Automations are only expanded as entry points and have no rule yet.
func (t *traversal) resolveAutomation(string) {}

// Scripts are only expanded as entry points and have no rule yet.
func (t *traversal) resolveScript(string) {}

func (t *traversal) resolveGroup(groupEntityID string) {
	for _, entityID := range t.sources.Groups.EntitiesInGroup(groupEntityID) {
		t.addOrResolve(KindEntity, entityID)
	}
}

func (t *traversal) resolveScene(sceneEntityID string) {
	for _, entityID := range t.sources.Scenes.EntitiesInScene(sceneEntityID) {
		t.addOrResolve(KindEntity, entityID)
	}
}

func (t *traversal) resolveConfigEntry(configEntryID string) {
	for _, device := range t.sources.Devices.DevicesForConfigEntry(configEntryID) {
		t.addOrResolve(KindDevice, device.ID)
	}
	for _, entity := range t.sources.Entities.EntitiesForConfigEntry(configEntryID) {
		t.addOrResolve(KindEntity, entity.EntityID)
	}
}
