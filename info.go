package headgear

import "github.com/milk9111/headgear/scene"

// Info is a per-call snapshot of a character's classified accessories.
// Nothing is cached: each call walks the tree again, so the result always
// reflects current scene state.
type Info struct {
	Hair  []scene.Node
	Hat   []scene.Node
	Face  []scene.Node
	Total int
}

// Info aggregates AccessoriesByType across the three classifiable
// categories. A nil character yields the zero Info.
func (c *Classifier) Info(character scene.Node) Info {
	info := Info{
		Hair: c.AccessoriesByType(character, CategoryHair),
		Hat:  c.AccessoriesByType(character, CategoryHat),
		Face: c.AccessoriesByType(character, CategoryFace),
	}
	info.Total = len(info.Hair) + len(info.Hat) + len(info.Face)
	return info
}
