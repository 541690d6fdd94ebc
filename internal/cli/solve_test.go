package cli

import (
	"testing"

	"github.com/matzehuels/boxflow/pkg/pipeline"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"empty output strips input ext", "", "layout.toml", "layout"},
		{"empty output nested input", "", "dir/page.json", "dir/page"},
		{"output with format ext", "out.svg", "layout.toml", "out"},
		{"output with json ext", "result.json", "layout.toml", "result"},
		{"output with other ext kept", "out.txt", "layout.toml", "out.txt"},
		{"bare output kept", "out", "layout.toml", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestSourceForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"layout.toml", pipeline.SourceTOML},
		{"layout.json", pipeline.SourceJSON},
		{"LAYOUT.JSON", pipeline.SourceJSON},
		{"layout", pipeline.SourceTOML},
		{"dir.json/layout.toml", pipeline.SourceTOML},
	}

	for _, tt := range tests {
		if got := sourceForPath(tt.path); got != tt.want {
			t.Errorf("sourceForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseFormats(t *testing.T) {
	got := parseFormats("")
	if len(got) != 1 || got[0] != pipeline.FormatSVG {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}

	got = parseFormats("json,dot")
	if len(got) != 2 || got[0] != "json" || got[1] != "dot" {
		t.Errorf("parseFormats(\"json,dot\") = %v", got)
	}
}
