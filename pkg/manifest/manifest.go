// Package manifest loads declarative layout descriptions and builds
// layout trees from them.
//
// A manifest describes a tree of layout nodes in TOML or JSON. The same
// schema is used by the CLI (files on disk) and the API (request bodies):
//
//	kind = "vertical"
//	spacing = 8.0
//
//	[height]
//	mode = "flex"
//	factor = 1
//
//	[[children]]
//	kind = "leaf"
//	label = "header"
//
//	[children.height]
//	mode = "fixed"
//	value = 40.0
//
// Parsing and building are separate steps: Parse only decodes the
// document, Build validates it and produces the pkg/layout tree.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxflow/pkg/errors"
)

// Node kinds accepted in manifests.
const (
	KindLeaf       = "leaf"
	KindBox        = "box"
	KindHorizontal = "horizontal"
	KindVertical   = "vertical"
)

// Spec describes one node of a layout tree.
type Spec struct {
	Kind  string `toml:"kind" json:"kind"`
	Label string `toml:"label,omitempty" json:"label,omitempty"`

	Width  *Axis `toml:"width,omitempty" json:"width,omitempty"`
	Height *Axis `toml:"height,omitempty" json:"height,omitempty"`

	Padding *Padding `toml:"padding,omitempty" json:"padding,omitempty"`
	Spacing float64  `toml:"spacing,omitempty" json:"spacing,omitempty"`

	MainAlign  string `toml:"main_align,omitempty" json:"main_align,omitempty"`
	CrossAlign string `toml:"cross_align,omitempty" json:"cross_align,omitempty"`

	// Child is the single child of a box node.
	Child *Spec `toml:"child,omitempty" json:"child,omitempty"`
	// Children are the ordered children of a horizontal or vertical node.
	Children []Spec `toml:"children,omitempty" json:"children,omitempty"`
}

// Axis describes the sizing of one axis.
type Axis struct {
	// Mode is "fixed", "shrink" or "flex". An absent axis means shrink.
	Mode string `toml:"mode" json:"mode"`
	// Value is the size for fixed mode.
	Value float64 `toml:"value,omitempty" json:"value,omitempty"`
	// Factor is the flex weight; defaults to 1 for flex mode.
	Factor int `toml:"factor,omitempty" json:"factor,omitempty"`
}

// Padding mirrors layout.Padding with manifest tags.
type Padding struct {
	Left   float64 `toml:"left,omitempty" json:"left,omitempty"`
	Right  float64 `toml:"right,omitempty" json:"right,omitempty"`
	Top    float64 `toml:"top,omitempty" json:"top,omitempty"`
	Bottom float64 `toml:"bottom,omitempty" json:"bottom,omitempty"`
}

// Load reads and parses a TOML manifest from disk.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to read manifest %s", path)
	}
	return Parse(data)
}

// Parse decodes a TOML manifest.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse TOML manifest")
	}
	return &spec, nil
}

// ParseJSON decodes a JSON manifest, as used by the HTTP API.
func ParseJSON(data []byte) (*Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse JSON manifest")
	}
	return &spec, nil
}
