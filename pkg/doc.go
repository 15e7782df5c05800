// Package pkg provides the core libraries of hmibuilder, a layout engine for
// HMI screen editors.
//
// # Overview
//
// Every element is placed on each axis relative to its parent edges: pinned
// to the start, pinned to the end, centred, or stretched between both. The
// engine resolves those placements to boxes, and turns pointer drags, nudges
// and alignment changes back into placements without moving anything on
// screen that the user did not touch.
//
// # Architecture
//
//	   [scene] document (JSON, TOML, YAML)
//	         ↓
//	   [layout] element store (kinds, containment, stacking order)
//	         ↓
//	   [editor] pointer and keyboard state machine
//	         ↓
//	   [drag] move/resize transforms      [guide] alignment guides
//	         ↓
//	   [anchor] placements and realignment
//	         ↓
//	   [preview] SVG, PDF and Graphviz output
//
// # Quick Start
//
//	store, _ := scene.Load("screen.json")
//	ed := editor.New(store)
//
//	ed.PointerDown(geom.Point{X: 20, Y: 20}, editor.ButtonLeft, 0)
//	ed.PointerMove(geom.Point{X: 60, Y: 20}, true)
//	ed.PointerUp(geom.Point{X: 60, Y: 20})
//
//	_ = scene.Save("screen.json", store)
//
// # Main Packages
//
// [anchor] - Alignment modes, per-axis placements, resolution against a
// parent span, and realignment that keeps the resolved span fixed.
//
// [layout] - The element catalog and the element store: boxes, containment,
// front/back ordering and unique naming.
//
// [drag] - Drag sessions. Move and resize transforms snap to the grid, clamp
// to the canvas and flip start/end alignment when an element crosses the
// midpoint.
//
// [guide] - The vertical and horizontal guide lines shown while dragging.
//
// [editor] - The interactive state machine that ties the above together.
//
// [scene] - The on-disk document format.
//
// [script] - A line-oriented language for replaying and checking editing
// sessions.
//
// [preview] - Canvas previews and the containment graph.
//
// [cache] - On-disk cache for rendered previews and graph layouts.
//
// [observability] - Hooks for drag and edit metrics.
//
// [errors] - Error codes shared by the CLI and the HTTP API.
//
// # Testing
//
//	go test ./pkg/...
//	go test -run Example ./pkg/anchor
//
// [anchor]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/anchor
// [layout]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/layout
// [drag]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/drag
// [guide]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/guide
// [editor]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/editor
// [scene]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/scene
// [script]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/script
// [preview]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/preview
// [cache]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/hmibuilder/pkg/errors
package pkg
