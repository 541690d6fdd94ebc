package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/layout"
)

const dashboardTOML = `
kind = "vertical"
label = "root"
spacing = 8.0

[width]
mode = "flex"

[height]
mode = "flex"

[[children]]
kind = "leaf"
label = "header"

[children.height]
mode = "fixed"
value = 40.0

[children.width]
mode = "flex"

[[children]]
kind = "horizontal"
label = "body"
spacing = 8.0

[children.width]
mode = "flex"

[children.height]
mode = "flex"

[[children.children]]
kind = "leaf"
label = "sidebar"

[children.children.width]
mode = "fixed"
value = 80.0

[children.children.height]
mode = "flex"

[[children.children]]
kind = "leaf"
label = "content"

[children.children.width]
mode = "flex"
factor = 1

[children.children.height]
mode = "flex"
`

func TestParseAndBuildTOML(t *testing.T) {
	spec, err := Parse([]byte(dashboardTOML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if spec.Kind != KindVertical {
		t.Errorf("Kind = %q, want vertical", spec.Kind)
	}
	if len(spec.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(spec.Children))
	}

	root, err := spec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := layout.Count(root); got != 5 {
		t.Errorf("node count = %d, want 5", got)
	}

	findings := layout.Solve(root, layout.Size{Width: 640, Height: 480})
	if len(findings) != 0 {
		t.Errorf("findings = %v, want none", findings)
	}

	var content layout.Node
	for node := range layout.Iter(root) {
		if node.Label() == "content" {
			content = node
		}
	}
	if content == nil {
		t.Fatal("content node not found")
	}
	// Width: 640 minus the 80 sidebar and the 8 gap. Height: 480 minus
	// the 40 header and the root's 8 gap.
	if got := content.Size(); got != (layout.Size{Width: 552, Height: 432}) {
		t.Errorf("content Size = %v, want {552 432}", got)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"kind": "box",
		"label": "card",
		"width": {"mode": "fixed", "value": 100},
		"height": {"mode": "fixed", "value": 50},
		"padding": {"left": 5, "right": 5, "top": 5, "bottom": 5},
		"main_align": "center",
		"cross_align": "center",
		"child": {
			"kind": "leaf",
			"label": "badge",
			"width": {"mode": "fixed", "value": 40},
			"height": {"mode": "fixed", "value": 20}
		}
	}`)

	spec, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	root, err := spec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	layout.Solve(root, layout.Size{Width: 200, Height: 200})

	box, ok := root.(*layout.Box)
	if !ok {
		t.Fatalf("root is %T, want *layout.Box", root)
	}
	if got := box.Child().Position(); got != (layout.Position{X: 30, Y: 15}) {
		t.Errorf("badge Position = %v, want {30 15}", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(dashboardTOML), 0644); err != nil {
		t.Fatal(err)
	}

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if spec.Label != "root" {
		t.Errorf("Label = %q, want root", spec.Label)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte(`kind = [unclosed`))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("Parse error = %v, want INVALID_MANIFEST", err)
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		code errors.Code
	}{
		{
			name: "missing kind",
			spec: Spec{},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "unknown kind",
			spec: Spec{Kind: "grid"},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "leaf with children",
			spec: Spec{Kind: KindLeaf, Children: []Spec{{Kind: KindLeaf}}},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "leaf with padding",
			spec: Spec{Kind: KindLeaf, Padding: &Padding{Left: 1}},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "box with children list",
			spec: Spec{Kind: KindBox, Children: []Spec{{Kind: KindLeaf}}},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "container with single child",
			spec: Spec{Kind: KindVertical, Child: &Spec{Kind: KindLeaf}},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "negative spacing",
			spec: Spec{Kind: KindHorizontal, Spacing: -1},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "negative padding",
			spec: Spec{Kind: KindVertical, Padding: &Padding{Left: -1}},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "negative fixed value",
			spec: Spec{Kind: KindLeaf, Width: &Axis{Mode: "fixed", Value: -5}},
			code: errors.ErrCodeInvalidSizing,
		},
		{
			name: "flex factor too large",
			spec: Spec{Kind: KindLeaf, Width: &Axis{Mode: "flex", Factor: 300}},
			code: errors.ErrCodeInvalidSizing,
		},
		{
			name: "unknown sizing mode",
			spec: Spec{Kind: KindLeaf, Width: &Axis{Mode: "grow"}},
			code: errors.ErrCodeInvalidSizing,
		},
		{
			name: "unknown alignment",
			spec: Spec{Kind: KindVertical, MainAlign: "middle"},
			code: errors.ErrCodeInvalidAlignment,
		},
		{
			name: "invalid nested child",
			spec: Spec{Kind: KindVertical, Children: []Spec{{Kind: "bogus"}}},
			code: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Build()
			if err == nil {
				t.Fatal("Build succeeded, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Build error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestBuildDefaults(t *testing.T) {
	spec := Spec{Kind: KindBox}

	root, err := spec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	box, ok := root.(*layout.Box)
	if !ok {
		t.Fatalf("root is %T, want *layout.Box", root)
	}
	// A box without an explicit child gets a placeholder leaf.
	if got := box.Child().Kind(); got != "leaf" {
		t.Errorf("child Kind = %q, want leaf", got)
	}
}

func TestBuildFlexFactorDefaultsToOne(t *testing.T) {
	spec := Spec{Kind: KindLeaf, Width: &Axis{Mode: "flex"}}

	root, err := spec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	is := root.IntrinsicSize()
	if is.Width.Mode != layout.ModeFlex || is.Width.Factor != 1 {
		t.Errorf("width sizing = %+v, want flex factor 1", is.Width)
	}
}
