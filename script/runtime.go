// Package script binds the classifier into tengo so gameplay scripts can
// ask accessory and headshot questions about a character. Scripts address
// nodes by slash-separated child paths relative to the character root.
package script

import (
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/headgear"
	"github.com/milk9111/headgear/scene"
)

// Run compiles and executes a script with the classifier bound to the
// character as the global `engine`. The returned Compiled exposes the
// script's globals to the caller.
func Run(cls *headgear.Classifier, character scene.Node, src []byte) (*tengo.Compiled, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := s.Add("engine", BuildEngine(cls, character)); err != nil {
		return nil, err
	}
	return s.Run()
}

// Resolve walks a slash-separated path of child names from root. An empty
// path resolves to root itself; a dead segment resolves to nil.
func Resolve(root scene.Node, path string) scene.Node {
	if root == nil {
		return nil
	}
	n := root
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		n = n.FindFirstChild(seg)
		if n == nil {
			return nil
		}
	}
	return n
}

// pathTo is the inverse of Resolve: the slash path of n relative to root,
// or the empty string when n does not sit under root.
func pathTo(root, n scene.Node) (string, bool) {
	if root == nil || n == nil {
		return "", false
	}
	var segs []string
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == root {
			for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
				segs[i], segs[j] = segs[j], segs[i]
			}
			return strings.Join(segs, "/"), true
		}
		segs = append(segs, cur.Name())
	}
	return "", false
}

// BuildEngine assembles the `engine` object handed to scripts.
func BuildEngine(cls *headgear.Classifier, character scene.Node) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	resolveArg := func(args []tengo.Object) scene.Node {
		if len(args) < 1 {
			return nil
		}
		return Resolve(character, objectAsString(args[0]))
	}

	values["is_head_part"] = &tengo.UserFunction{Name: "is_head_part", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolValue(cls.IsHeadPart(resolveArg(args))), nil
	}}

	values["accessory_type"] = &tengo.UserFunction{Name: "accessory_type", Value: func(args ...tengo.Object) (tengo.Object, error) {
		cat, ok := cls.AccessoryType(resolveArg(args))
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.String{Value: string(cat)}, nil
	}}

	values["accessories_by_type"] = &tengo.UserFunction{Name: "accessories_by_type", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return &tengo.Array{}, nil
		}
		want := headgear.Category(objectAsString(args[0]))
		return nameArray(cls.AccessoriesByType(character, want)), nil
	}}

	values["has_head_accessories"] = &tengo.UserFunction{Name: "has_head_accessories", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolValue(cls.HasHeadAccessories(character)), nil
	}}

	values["is_headshot"] = &tengo.UserFunction{Name: "is_headshot", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolValue(cls.IsHeadshot(resolveArg(args), character)), nil
	}}

	values["info"] = &tengo.UserFunction{Name: "info", Value: func(args ...tengo.Object) (tengo.Object, error) {
		info := cls.Info(character)
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"hair":  nameArray(info.Hair),
			"hat":   nameArray(info.Hat),
			"face":  nameArray(info.Face),
			"total": &tengo.Int{Value: int64(info.Total)},
		}}, nil
	}}

	values["part_at"] = &tengo.UserFunction{Name: "part_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.UndefinedValue, nil
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return tengo.UndefinedValue, nil
		}
		hit := scene.PartAt(character, cp.Vector{X: x, Y: y})
		path, ok := pathTo(character, hit)
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.String{Value: path}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func nameArray(nodes []scene.Node) *tengo.Array {
	arr := &tengo.Array{Value: make([]tengo.Object, 0, len(nodes))}
	for _, n := range nodes {
		arr.Value = append(arr.Value, &tengo.String{Value: n.Name()})
	}
	return arr
}

func boolValue(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(o tengo.Object) string {
	if o == nil {
		return ""
	}
	s, _ := tengo.ToString(o)
	return s
}
