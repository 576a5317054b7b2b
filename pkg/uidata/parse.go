// Package uidata decodes declarative widget descriptions.
//
// Every Parse function decodes one value from a YAML node. On failure it
// returns a *errors.ParseError and leaves the output untouched, so callers
// can abort the whole record at the first bad field.
package uidata

import (
	"fmt"

	"github.com/go-drift/dockui/pkg/errors"
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/layout"
	"gopkg.in/yaml.v3"
)

// Number is any scalar a vector component can decode into.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func describe(n *yaml.Node) string {
	if n == nil {
		return "nothing"
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return fmt.Sprintf("scalar %q", n.Value)
	case yaml.SequenceNode:
		return fmt.Sprintf("sequence of %d", len(n.Content))
	case yaml.MappingNode:
		return fmt.Sprintf("mapping of %d", len(n.Content)/2)
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return "unknown node"
}

func parseErr(field, dataType string, n *yaml.Node) error {
	return &errors.ParseError{Field: field, DataType: dataType, Got: describe(n)}
}

// resolve unwraps documents and aliases.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Field returns the value stored under key in a mapping node, or nil.
func Field(n *yaml.Node, key string) *yaml.Node {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolve(n.Content[i+1])
		}
	}
	return nil
}

func scalar[T any](n *yaml.Node, dataType string, out *T) error {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return parseErr("", dataType, n)
	}
	var v T
	if err := n.Decode(&v); err != nil {
		return parseErr("", dataType, n)
	}
	*out = v
	return nil
}

// ParseBool decodes a boolean scalar.
func ParseBool(n *yaml.Node, out *bool) error {
	return scalar(n, "bool", out)
}

// ParseString decodes a string scalar.
func ParseString(n *yaml.Node, out *string) error {
	return scalar(n, "string", out)
}

// ParseFloat decodes a numeric scalar.
func ParseFloat(n *yaml.Node, out *float32) error {
	return scalar(n, "float", out)
}

func parseVec[T Number](n *yaml.Node, dataType string, out []T) error {
	n = resolve(n)
	if n == nil || n.Kind != yaml.SequenceNode || len(n.Content) != len(out) {
		return parseErr("", dataType, n)
	}
	tmp := make([]T, len(out))
	for i, c := range n.Content {
		if err := scalar(c, dataType, &tmp[i]); err != nil {
			return parseErr("", dataType, n)
		}
	}
	copy(out, tmp)
	return nil
}

// ParseVec2 decodes a sequence of exactly two numbers.
func ParseVec2[T Number](n *yaml.Node, out *[2]T) error {
	return parseVec(n, "vec2", out[:])
}

// ParseVec3 decodes a sequence of exactly three numbers.
func ParseVec3[T Number](n *yaml.Node, out *[3]T) error {
	return parseVec(n, "vec3", out[:])
}

// ParseVec4 decodes a sequence of exactly four numbers.
func ParseVec4[T Number](n *yaml.Node, out *[4]T) error {
	return parseVec(n, "vec4", out[:])
}

// ParseColor decodes a [r, g, b, a] sequence of bytes.
func ParseColor(n *yaml.Node, out *graphics.Color) error {
	var v [4]uint8
	if err := parseVec(n, "color", v[:]); err != nil {
		return err
	}
	*out = graphics.RGBA8(v[0], v[1], v[2], v[3])
	return nil
}

func parseEnum[T any](n *yaml.Node, dataType string, lookup func(string) (T, bool), out *T) error {
	var name string
	if err := ParseString(n, &name); err != nil {
		return parseErr("", dataType, resolve(n))
	}
	v, ok := lookup(name)
	if !ok {
		return parseErr("", dataType, resolve(n))
	}
	*out = v
	return nil
}

// ParseTextAlign decodes a text alignment name such as "top_left".
func ParseTextAlign(n *yaml.Node, out *graphics.TextAlign) error {
	return parseEnum(n, "text_align", graphics.ParseTextAlign, out)
}

// ParseClippingState decodes "inherit", "visible" or "hidden".
func ParseClippingState(n *yaml.Node, out *layout.ClippingState) error {
	return parseEnum(n, "clipping_state", layout.ParseClippingState, out)
}

// ParseDockState decodes a dock edge name.
func ParseDockState(n *yaml.Node, out *layout.DockState) error {
	return parseEnum(n, "dock_state", layout.ParseDockState, out)
}

// ParsePositionType decodes a position type name.
func ParsePositionType(n *yaml.Node, out *layout.PositionType) error {
	return parseEnum(n, "position_type", layout.ParsePositionType, out)
}

// ParseDimensionType decodes a dimension unit name.
func ParseDimensionType(n *yaml.Node, out *layout.DimensionKind) error {
	return parseEnum(n, "dimension_type", layout.ParseDimensionKind, out)
}

// ParseGradientType decodes a gradient direction name.
func ParseGradientType(n *yaml.Node, out *graphics.GradientType) error {
	return parseEnum(n, "gradient_type", graphics.ParseGradientType, out)
}

// mapping checks that n is a mapping holding every key and returns the
// values in key order.
func mapping(n *yaml.Node, dataType string, keys ...string) ([]*yaml.Node, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, parseErr("", dataType, n)
	}
	vals := make([]*yaml.Node, len(keys))
	for i, k := range keys {
		vals[i] = Field(n, k)
		if vals[i] == nil {
			return nil, &errors.ParseError{Field: k, DataType: dataType, Got: "missing key"}
		}
	}
	return vals, nil
}

// ParseClipping decodes a {left, top, right, bottom} mapping of clipping
// states.
func ParseClipping(n *yaml.Node, out *layout.Clipping) error {
	vals, err := mapping(n, "clipping", "left", "top", "right", "bottom")
	if err != nil {
		return err
	}
	var c layout.Clipping
	for i, dst := range []*layout.ClippingState{&c.Left, &c.Top, &c.Right, &c.Bottom} {
		if err := ParseClippingState(vals[i], dst); err != nil {
			return err
		}
	}
	*out = c
	return nil
}

// ParseDock decodes a {state, size} mapping.
func ParseDock(n *yaml.Node, out *layout.Dock) error {
	vals, err := mapping(n, "dock", "state", "size")
	if err != nil {
		return err
	}
	var d layout.Dock
	if err := ParseDockState(vals[0], &d.State); err != nil {
		return err
	}
	if err := ParseFloat(vals[1], &d.Size); err != nil {
		return err
	}
	*out = d
	return nil
}

func parseLengthKeys(n *yaml.Node, valueKey, dimKey string, out *layout.Length) error {
	vals, err := mapping(n, "length", valueKey, dimKey)
	if err != nil {
		return err
	}
	var l layout.Length
	if err := ParseFloat(vals[0], &l.Value); err != nil {
		return err
	}
	if err := ParseDimensionType(vals[1], &l.Unit); err != nil {
		return err
	}
	*out = l
	return nil
}

// ParseLength decodes a {x, dim_x} mapping.
func ParseLength(n *yaml.Node, out *layout.Length) error {
	return parseLengthKeys(n, "x", "dim_x", out)
}

// ParseLength2 decodes a {x, dim_x, y, dim_y} mapping.
func ParseLength2(n *yaml.Node, out *layout.Length2) error {
	var l layout.Length2
	if err := parseLengthKeys(n, "x", "dim_x", &l.X); err != nil {
		return err
	}
	if err := parseLengthKeys(n, "y", "dim_y", &l.Y); err != nil {
		return err
	}
	*out = l
	return nil
}

// ParseLength4 decodes a {x, y, z, w} mapping with a dim_ key for each.
func ParseLength4(n *yaml.Node, out *layout.Length4) error {
	var l layout.Length4
	parts := []struct {
		key string
		dst *layout.Length
	}{{"x", &l.X}, {"y", &l.Y}, {"z", &l.Z}, {"w", &l.W}}
	for _, p := range parts {
		if err := parseLengthKeys(n, p.key, "dim_"+p.key, p.dst); err != nil {
			return err
		}
	}
	*out = l
	return nil
}

// ParseGradient decodes a {color1, color2, grad_type} mapping.
func ParseGradient(n *yaml.Node, out *graphics.Gradient) error {
	vals, err := mapping(n, "gradient", "color1", "color2", "grad_type")
	if err != nil {
		return err
	}
	var g graphics.Gradient
	if err := ParseColor(vals[0], &g.Color1); err != nil {
		return err
	}
	if err := ParseColor(vals[1], &g.Color2); err != nil {
		return err
	}
	if err := ParseGradientType(vals[2], &g.Type); err != nil {
		return err
	}
	*out = g
	return nil
}
