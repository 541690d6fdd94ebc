// Package render turns solved layout trees into serializable and visual
// artifacts.
//
// Three output paths are provided:
//
//   - [Flatten] and [Document]: positioned blocks with JSON/BSON tags,
//     the exchange format of the CLI, cache, store, and API.
//   - [ToDOT]: a Graphviz DOT description of the node tree annotated
//     with solved geometry, for quick structural inspection.
//   - [RenderSVG]: DOT rasterized to SVG via Graphviz.
//
// Typical usage:
//
//	findings := layout.Solve(root, frame)
//	doc := render.NewDocument(root, frame, findings)
//	svg, err := render.RenderSVG(render.ToDOT(root))
package render
