package scene

import "github.com/jakecoffman/cp"

// Part is an in-memory Node. Rig files build Parts, tests build Parts, and
// host adapters that mirror an engine hierarchy can build Parts too.
type Part struct {
	name     string
	tags     map[Tag]bool
	parent   *Part
	children []*Part

	box    cp.BB
	hasBox bool
}

func NewPart(name string, tags ...Tag) *Part {
	p := &Part{name: name}
	if len(tags) > 0 {
		p.tags = make(map[Tag]bool, len(tags))
		for _, t := range tags {
			p.tags[t] = true
		}
	}
	return p
}

func (p *Part) Name() string { return p.name }

func (p *Part) HasTag(tag Tag) bool { return p.tags[tag] }

func (p *Part) Parent() Node {
	if p.parent == nil {
		return nil
	}
	return p.parent
}

func (p *Part) Children() []Node {
	out := make([]Node, len(p.children))
	for i, c := range p.children {
		out[i] = c
	}
	return out
}

func (p *Part) FindFirstChild(name string) Node {
	for _, c := range p.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Add appends children to p, reparenting each one, and returns p so trees
// can be built inline.
func (p *Part) Add(children ...*Part) *Part {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = p
		p.children = append(p.children, c)
	}
	return p
}

// SetBox attaches a world-space bounding box so the part participates in
// point hit tests. Parts without a box are skipped by PartAt.
func (p *Part) SetBox(box cp.BB) *Part {
	p.box = box
	p.hasBox = true
	return p
}

// Box returns the part's bounding box. ok is false when none was set.
func (p *Part) Box() (cp.BB, bool) { return p.box, p.hasBox }

// boxed is satisfied by nodes that expose hit-test geometry.
type boxed interface {
	Box() (cp.BB, bool)
}

// PartAt resolves a collision point to a node. Children are searched before
// their parent so the deepest part containing pt wins; a torso box never
// shadows the hat sitting inside it. Nodes without geometry never match but
// their children are still visited. Returns nil when nothing is hit.
func PartAt(root Node, pt cp.Vector) Node {
	if root == nil {
		return nil
	}
	for _, c := range root.Children() {
		if hit := PartAt(c, pt); hit != nil {
			return hit
		}
	}
	if b, ok := root.(boxed); ok {
		if box, has := b.Box(); has && box.ContainsVect(pt) {
			return root
		}
	}
	return nil
}
