package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxflow/pkg/cache"
	"github.com/matzehuels/boxflow/pkg/layout"
	"github.com/matzehuels/boxflow/pkg/manifest"
	"github.com/matzehuels/boxflow/pkg/observability"
	"github.com/matzehuels/boxflow/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, as long as each call gets its own tree.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → solve → render pipeline with caching.
//
// Cancellation is checked between stages; a stage that has started runs to
// completion.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		ManifestHash: cache.Hash([]byte(opts.Manifest)),
		Artifacts:    make(map[string][]byte),
	}

	// Stage 1: Build
	buildStart := time.Now()
	root, err := r.Build(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Info("built node tree",
		"nodes", layout.Count(root),
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Solve
	solveStart := time.Now()
	doc, solveHit, err := r.SolveWithCacheInfo(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Document = doc
	result.Stats.SolveTime = time.Since(solveStart)
	result.Stats.NodeCount = len(doc.Blocks)
	result.Stats.FindingCount = len(doc.Findings)
	result.CacheInfo.SolveHit = solveHit

	r.Logger.Info("solved layout",
		"blocks", len(doc.Blocks),
		"findings", len(doc.Findings),
		"duration", result.Stats.SolveTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build parses the manifest and constructs the node tree. The tree is not
// solved; pass it to Solve or call layout.Solve directly.
func (r *Runner) Build(ctx context.Context, opts Options) (layout.Node, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Solver().OnBuildStart(ctx, opts.Source)

	var spec *manifest.Spec
	var err error
	switch opts.Source {
	case SourceJSON:
		spec, err = manifest.ParseJSON([]byte(opts.Manifest))
	default:
		spec, err = manifest.Parse([]byte(opts.Manifest))
	}
	if err != nil {
		observability.Solver().OnBuildComplete(ctx, opts.Source, 0, time.Since(start), err)
		return nil, err
	}

	root, err := spec.Build()
	if err != nil {
		observability.Solver().OnBuildComplete(ctx, opts.Source, 0, time.Since(start), err)
		return nil, err
	}

	observability.Solver().OnBuildComplete(ctx, opts.Source, layout.Count(root), time.Since(start), nil)
	return root, nil
}

// SolveWithCacheInfo solves the tree with caching and returns cache hit info.
//
// The cache key covers the manifest content and the frame size, so a hit
// is only possible for an identical manifest solved against an identical
// frame. On a hit the tree is left untouched and the cached document is
// returned; on a miss the tree carries the solved geometry afterwards.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, root layout.Node, opts Options) (render.Document, bool, error) {
	opts.SetSolveDefaults()
	r.applyLogger(&opts)

	manifestHash := cache.Hash([]byte(opts.Manifest))
	cacheKey := r.Keyer.LayoutKey(manifestHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if doc, err := render.UnmarshalDocument(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return doc, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	// Solve
	nodeCount := layout.Count(root)
	frame := layout.Size{Width: opts.Width, Height: opts.Height}

	start := time.Now()
	observability.Solver().OnSolveStart(ctx, nodeCount)
	findings := layout.Solve(root, frame)
	observability.Solver().OnSolveComplete(ctx, nodeCount, len(findings), time.Since(start))

	doc := render.NewDocument(root, frame, findings)

	// Cache the result
	if data, err := render.MarshalDocument(doc); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return doc, false, nil
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, root layout.Node, opts Options) (render.Document, error) {
	doc, _, err := r.SolveWithCacheInfo(ctx, root, opts)
	return doc, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc render.Document, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the solved document
	docData, err := render.MarshalDocument(doc)
	if err != nil {
		return nil, false, fmt.Errorf("serialize document for cache key: %w", err)
	}
	layoutHash := cache.Hash(docData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	start := time.Now()
	observability.Solver().OnRenderStart(ctx, opts.Formats)
	rendered, err := renderDocument(ctx, doc, docData, opts.Formats)
	observability.Solver().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc render.Document, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, opts)
	return artifacts, err
}

// renderDocument produces the requested formats from a solved document.
// docData is the document already serialized to JSON, reused for the json
// format instead of marshaling twice.
func renderDocument(ctx context.Context, doc render.Document, docData []byte, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		switch format {
		case FormatJSON:
			artifacts[format] = docData
		case FormatDOT:
			artifacts[format] = []byte(render.DocumentDOT(doc))
		case FormatSVG:
			svg, err := render.RenderSVG(ctx, render.DocumentDOT(doc))
			if err != nil {
				return nil, fmt.Errorf("render svg: %w", err)
			}
			artifacts[format] = svg
		default:
			return nil, ValidateFormat(format)
		}
	}
	return artifacts, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
