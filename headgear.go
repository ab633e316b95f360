// Package headgear classifies character-attached accessories (hair, hats,
// face cosmetics) and decides whether a hit part counts as a headshot. The
// engine's built-in accessory type tag is unreliable, so classification
// leans on the attachment markers under each accessory's Handle instead.
//
// Every query is a pure read of the tree the host passes in: absent or
// malformed input degrades to false, empty, or a zero value rather than an
// error.
package headgear

import "github.com/milk9111/headgear/scene"

// handleName is the child that physically represents an accessory and
// carries its attachment markers.
const handleName = "Handle"

// headPartNames are names a head part may carry directly.
var headPartNames = map[string]bool{
	"Head":   true,
	"Cabesa": true,
}

// faceDecalName marks a head part via its face decal child.
const faceDecalName = "face"

// Classifier answers accessory and headshot queries over a character
// hierarchy. It holds only its category tables; it never owns or mutates
// scene nodes, so one Classifier serves any number of characters.
type Classifier struct {
	tables Tables
}

// New builds a Classifier around the given tables. Empty tables fall back
// to DefaultTables, so New(nil) is the stock configuration.
func New(tables Tables) *Classifier {
	if len(tables) == 0 {
		tables = DefaultTables()
	}
	return &Classifier{tables: tables}
}

// Tables returns the classifier's category tables.
func (c *Classifier) Tables() Tables { return c.tables }

// IsHeadPart reports whether n represents a character's head: named Head or
// Cabesa, carrying a face decal child, or carrying any head-table
// attachment. Nil nodes are not head parts.
func (c *Classifier) IsHeadPart(n scene.Node) bool {
	if n == nil {
		return false
	}
	if headPartNames[n.Name()] {
		return true
	}
	if n.FindFirstChild(faceDecalName) != nil {
		return true
	}
	for _, name := range c.tables.Names(CategoryHead) {
		if n.FindFirstChild(name) != nil {
			return true
		}
	}
	return false
}

// AccessoryType classifies a single accessory by the attachments under its
// Handle. ok is false when n is nil, not tagged as an accessory, or has no
// Handle child; CategoryUnknown means a well-formed accessory that matches
// no table entry. Categories are scanned in table order, so priority is
// whatever the tables declare.
func (c *Classifier) AccessoryType(n scene.Node) (Category, bool) {
	if n == nil || !n.HasTag(scene.TagAccessory) {
		return "", false
	}
	handle := n.FindFirstChild(handleName)
	if handle == nil {
		return "", false
	}
	for _, e := range c.tables {
		if !e.Category.Classifiable() {
			continue
		}
		for _, name := range e.Names {
			if handle.FindFirstChild(name) != nil {
				return e.Category, true
			}
		}
	}
	return CategoryUnknown, true
}

// AccessoriesByType returns the character's direct accessory children of the
// requested category, in child order. Nil characters and non-classifiable
// categories (including Head) yield nil.
func (c *Classifier) AccessoriesByType(character scene.Node, want Category) []scene.Node {
	if character == nil || !want.Classifiable() {
		return nil
	}
	var out []scene.Node
	for _, child := range character.Children() {
		if got, ok := c.AccessoryType(child); ok && got == want {
			out = append(out, child)
		}
	}
	return out
}

// HasHeadAccessories reports whether the character wears at least one
// classified hair, hat, or face accessory.
func (c *Classifier) HasHeadAccessories(character scene.Node) bool {
	return c.Info(character).Total > 0
}

// IsHeadshot reports whether a collision against hit counts as striking the
// character's head: either hit is a head part itself, or hit belongs to an
// accessory classified Hair, Face, or Hat. Accessories classified Unknown
// do not produce headshots. False when either node is nil.
func (c *Classifier) IsHeadshot(hit, character scene.Node) bool {
	if hit == nil || character == nil {
		return false
	}
	if c.IsHeadPart(hit) {
		return true
	}
	owner := hit.Parent()
	if owner == nil {
		return false
	}
	got, ok := c.AccessoryType(owner)
	return ok && got.Classifiable()
}
