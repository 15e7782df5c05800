// Package preview renders a layout for people to look at.
//
// [RenderSVG] and [RenderPDF] draw the canvas frame, every element's
// resolved box (containers dashed), the selection and any active snap
// guides, using [github.com/tdewolff/canvas]. Coordinates are canvas pixels
// scaled to millimetres by [Options.Scale].
//
// [ContainmentDOT] describes which container holds which element as a
// Graphviz digraph, hanging top-level elements from the canvas. [RenderDOT]
// lays it out in process with [github.com/goccy/go-graphviz].
package preview
