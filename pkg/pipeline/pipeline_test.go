package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxflow/pkg/cache"
)

const testManifest = `
kind = "vertical"
label = "root"

[width]
mode = "flex"

[height]
mode = "flex"

[[children]]
kind = "leaf"
label = "header"

[children.width]
mode = "flex"

[children.height]
mode = "fixed"
value = 40.0

[[children]]
kind = "leaf"
label = "body"

[children.width]
mode = "flex"

[children.height]
mode = "flex"
`

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"JSON", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"json", "dot"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"json", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateSource(t *testing.T) {
	tests := []struct {
		source  string
		wantErr bool
	}{
		{"toml", false},
		{"json", false},
		{"yaml", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateSource(tt.source)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateSource(%q) error = %v, wantErr %v", tt.source, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Manifest: testManifest}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	if opts.Source != SourceTOML {
		t.Errorf("Source should be %q, got %q", SourceTOML, opts.Source)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("frame should default to %vx%v, got %vx%v",
			DefaultWidth, DefaultHeight, opts.Width, opts.Height)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("Formats should default to [json], got %v", opts.Formats)
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("Second validation should pass: %v", err)
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	// Missing manifest
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Missing manifest should fail")
	}

	// Unknown source
	opts = Options{Manifest: testManifest, Source: "yaml"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Unknown source should fail")
	}

	// Unknown format
	opts = Options{Manifest: testManifest, Formats: []string{"png"}}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Unknown format should fail")
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())

	result, err := runner.Execute(context.Background(), Options{
		Manifest: testManifest,
		Width:    640,
		Height:   480,
		Formats:  []string{FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.NodeCount != 3 {
		t.Errorf("NodeCount = %d, want 3", result.Stats.NodeCount)
	}
	if result.Stats.FindingCount != 0 {
		t.Errorf("FindingCount = %d, want 0", result.Stats.FindingCount)
	}
	if result.ManifestHash == "" {
		t.Error("ManifestHash should be set")
	}

	doc := result.Document
	if doc.FrameWidth != 640 || doc.FrameHeight != 480 {
		t.Errorf("frame = %vx%v, want 640x480", doc.FrameWidth, doc.FrameHeight)
	}
	if len(doc.Blocks) != 3 {
		t.Fatalf("len(Blocks) = %d, want 3", len(doc.Blocks))
	}
	if doc.Blocks[1].Label != "header" || doc.Blocks[1].Height != 40 {
		t.Errorf("header block = %+v, want height 40", doc.Blocks[1])
	}
	if doc.Blocks[2].Y != 40 || doc.Blocks[2].Height != 440 {
		t.Errorf("body block = %+v, want y=40 height=440", doc.Blocks[2])
	}

	for _, format := range []string{FormatJSON, FormatDOT} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("missing %s artifact", format)
		}
	}

	// NullCache never hits.
	if result.CacheInfo.SolveHit || result.CacheInfo.RenderHit {
		t.Errorf("CacheInfo = %+v, want no hits", result.CacheInfo)
	}
}

func TestRunnerExecuteJSONSource(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())

	result, err := runner.Execute(context.Background(), Options{
		Manifest: `{"kind": "leaf", "label": "solo", "width": {"mode": "fixed", "value": 10}, "height": {"mode": "fixed", "value": 10}}`,
		Source:   SourceJSON,
		Formats:  []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Stats.NodeCount != 1 {
		t.Errorf("NodeCount = %d, want 1", result.Stats.NodeCount)
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, testLogger())
	defer runner.Close()

	opts := Options{
		Manifest: testManifest,
		Width:    640,
		Height:   480,
		Formats:  []string{FormatJSON, FormatDOT},
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.SolveHit || first.CacheInfo.RenderHit {
		t.Errorf("first run CacheInfo = %+v, want no hits", first.CacheInfo)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.SolveHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want all hits", second.CacheInfo)
	}
	if string(second.Artifacts[FormatDOT]) != string(first.Artifacts[FormatDOT]) {
		t.Error("cached DOT artifact differs from original")
	}

	// A different frame size must not reuse the cached solve.
	resized := opts
	resized.Width = 320
	third, err := runner.Execute(context.Background(), resized)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.SolveHit {
		t.Error("resized run should not hit the solve cache")
	}
	if third.Document.Blocks[0].Width != 320 {
		t.Errorf("root width = %v, want 320", third.Document.Blocks[0].Width)
	}

	// Refresh bypasses the solve cache.
	refreshed := opts
	refreshed.Refresh = true
	fourth, err := runner.Execute(context.Background(), refreshed)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if fourth.CacheInfo.SolveHit {
		t.Error("refresh run should not hit the solve cache")
	}
}

func TestRunnerExecuteInvalidManifest(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())

	if _, err := runner.Execute(context.Background(), Options{
		Manifest: `kind = [unclosed`,
	}); err == nil {
		t.Error("invalid manifest should fail")
	}

	if _, err := runner.Execute(context.Background(), Options{
		Manifest: `kind = "grid"`,
	}); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestRunnerExecuteCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(nil, nil, testLogger())
	if _, err := runner.Execute(ctx, Options{Manifest: testManifest}); err == nil {
		t.Error("canceled context should abort the pipeline")
	}
}
