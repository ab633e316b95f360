// Package rig loads character rigs and category tables from YAML, with
// embedded defaults and disk override, and watches rig files for edits.
package rig

import (
	"github.com/cockroachdb/errors"
	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/headgear"
	"github.com/milk9111/headgear/scene"
)

// TablesSpec is the YAML form of the category tables. Declared order is
// classification priority.
type TablesSpec struct {
	Categories []CategorySpec `yaml:"categories"`
}

type CategorySpec struct {
	Name        string   `yaml:"name"`
	Attachments []string `yaml:"attachments"`
}

// NodeSpec describes one node of a character tree. Center and Extents are
// optional box geometry (world-space center, half-width, half-height) for
// hit-point resolution.
type NodeSpec struct {
	Name     string     `yaml:"name"`
	Tags     []string   `yaml:"tags"`
	Center   []float64  `yaml:"center"`
	Extents  []float64  `yaml:"extents"`
	Children []NodeSpec `yaml:"children"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, errors.Wrapf(err, "rig: load %s", filename)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, errors.Wrapf(err, "rig: unmarshal %s", filename)
	}

	return spec, nil
}

// LoadTables reads a category table file. An empty filename loads the
// embedded defaults.
func LoadTables(filename string) (headgear.Tables, error) {
	if filename == "" {
		filename = "default_tables.yaml"
	}
	spec, err := LoadSpec[TablesSpec](filename)
	if err != nil {
		return nil, err
	}
	return spec.Tables()
}

// LoadCharacter reads a character rig file and builds its part tree.
func LoadCharacter(filename string) (*scene.Part, error) {
	spec, err := LoadSpec[NodeSpec](filename)
	if err != nil {
		return nil, err
	}
	return spec.Build(), nil
}

var knownCategories = map[string]headgear.Category{
	string(headgear.CategoryHair): headgear.CategoryHair,
	string(headgear.CategoryFace): headgear.CategoryFace,
	string(headgear.CategoryHat):  headgear.CategoryHat,
	string(headgear.CategoryHead): headgear.CategoryHead,
}

// Tables converts the spec into classifier tables, preserving declared
// order. Unknown category names are rejected rather than silently ignored
// so a typo in a custom table file doesn't demote every accessory to
// Unknown.
func (s TablesSpec) Tables() (headgear.Tables, error) {
	if len(s.Categories) == 0 {
		return nil, errors.New("rig: tables spec has no categories")
	}
	tables := make(headgear.Tables, 0, len(s.Categories))
	for _, c := range s.Categories {
		cat, ok := knownCategories[c.Name]
		if !ok {
			return nil, errors.Newf("rig: unknown category %q", c.Name)
		}
		tables = append(tables, headgear.Entry{
			Category: cat,
			Names:    append([]string(nil), c.Attachments...),
		})
	}
	return tables, nil
}

// Build constructs the part tree the spec describes.
func (s NodeSpec) Build() *scene.Part {
	tags := make([]scene.Tag, 0, len(s.Tags))
	for _, t := range s.Tags {
		tags = append(tags, scene.Tag(t))
	}
	p := scene.NewPart(s.Name, tags...)
	if len(s.Center) == 2 && len(s.Extents) == 2 {
		center := cp.Vector{X: s.Center[0], Y: s.Center[1]}
		p.SetBox(cp.NewBBForExtents(center, s.Extents[0], s.Extents[1]))
	}
	for _, child := range s.Children {
		p.Add(child.Build())
	}
	return p
}
