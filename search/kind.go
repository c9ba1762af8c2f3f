package search

import (
	"fmt"
	"strings"
)

// Kind identifies one of the fixed categories of items in the configuration graph.
type Kind string

const (
	KindArea        Kind = "area"
	KindAutomation  Kind = "automation"
	KindConfigEntry Kind = "config_entry"
	KindDevice      Kind = "device"
	KindEntity      Kind = "entity"
	KindGroup       Kind = "group"
	KindScene       Kind = "scene"
	KindScript      Kind = "script"
)

var supportedKinds = []Kind{
	KindArea,
	KindAutomation,
	KindConfigEntry,
	KindDevice,
	KindEntity,
	KindGroup,
	KindScene,
	KindScript,
}

// Terminal kinds are recorded when discovered but only expanded as entry points.
var terminalKinds = map[Kind]bool{
	KindScene:       true,
	KindAutomation:  true,
	KindScript:      true,
	KindGroup:       true,
	KindConfigEntry: true,
	KindArea:        true,
}

// Kinds whose items are entities as well, in canonical order.
var specificEntityKinds = []Kind{KindScript, KindScene, KindAutomation, KindGroup}

// Entity domains that are backed by a kind of their own.
var entityDomainKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(specificEntityKinds))
	for _, k := range specificEntityKinds {
		m[string(k)] = k
	}
	return m
}()

// SupportedKinds returns the closed set of kinds in their canonical order.
func SupportedKinds() []Kind {
	return append([]Kind(nil), supportedKinds...)
}

// ParseKind converts a raw item type into a Kind.
func ParseKind(raw string) (Kind, bool) {
	k := Kind(strings.TrimSpace(raw))
	return k, k.IsValid()
}

// IsValid reports whether k belongs to the supported set.
func (k Kind) IsValid() bool {
	for _, supported := range supportedKinds {
		if k == supported {
			return true
		}
	}
	return false
}

// IsTerminal reports whether nodes of this kind stop the traversal when discovered.
func (k Kind) IsTerminal() bool {
	return terminalKinds[k]
}

func (k Kind) String() string {
	return string(k)
}

// SupportedKindNames returns the kinds as a comma-separated list, for help and error text.
func SupportedKindNames() string {
	names := make([]string, 0, len(supportedKinds))
	for _, k := range supportedKinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// Node is a (kind, id) pair, the unit of identity in a search.
type Node struct {
	Kind Kind   `json:"type"`
	ID   string `json:"id"`
}

// String renders the node as "kind:id", which is also its hash in the trace graph.
func (n Node) String() string {
	return fmt.Sprintf("%s:%s", n.Kind, n.ID)
}

// SplitEntityID splits an entity id into its domain and object id.
// An id without a dot is treated as a bare domain.
func SplitEntityID(entityID string) (domain, objectID string) {
	domain, objectID, _ = strings.Cut(entityID, ".")
	return domain, objectID
}
