// Package scene exposes a read-only view of a host-owned character
// hierarchy. The classifier only ever needs names, capability tags, and
// parent/child links, so adapters for a live engine graph stay small.
package scene

// Tag marks a capability on a node. Tags are assigned by the host runtime;
// this package only reads them.
type Tag string

// TagAccessory marks a node as the root of a wearable accessory.
const TagAccessory Tag = "Accessory"

// Node is one element of the character hierarchy. Implementations must not
// mutate the underlying tree on behalf of callers; every method is a pure
// read of current state.
//
// Children returns direct children in host-defined order, which is not
// guaranteed stable between engine sessions. FindFirstChild returns nil
// when no direct child carries the given name.
type Node interface {
	Name() string
	HasTag(tag Tag) bool
	Parent() Node
	Children() []Node
	FindFirstChild(name string) Node
}
