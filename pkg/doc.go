// Package pkg provides the core libraries for Boxflow layout solving.
//
// # Overview
//
// Boxflow turns declarative layout manifests into solved box-model trees
// and rendered artifacts. The pkg directory is organized into:
//
//  1. [layout] - The constraint solver (nodes, sizing, findings)
//  2. [manifest] - Manifest parsing and tree building
//  3. [render] - Documents, DOT, and SVG output
//  4. [pipeline] - Orchestration (build → solve → render) with caching
//  5. [cache], [store] - Result cache and snapshot persistence backends
//  6. [api] - The HTTP server exposing the pipeline
//
// # Architecture
//
// The typical data flow through Boxflow:
//
//	TOML/JSON manifest
//	         ↓
//	    [manifest] package (parse + build the node tree)
//	         ↓
//	    [layout] package (solve sizes and positions)
//	         ↓
//	    [render] package (document, DOT, SVG)
//	         ↓
//	    JSON/DOT/SVG output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, &pipeline.Options{
//		Manifest: manifestTOML,
//		Formats:  []string{pipeline.FormatSVG},
//	})
//
// Cross-cutting concerns live in [errors] (structured error codes),
// [observability] (pipeline and cache hooks), and [buildinfo] (version
// metadata).
package pkg
