// Package scene reads and writes layout documents.
//
// A document is the canvas size plus the element list, back to front:
//
//	{
//	  "canvas": {"width": 400, "height": 300},
//	  "elements": [
//	    {"name": "panel", "kind": "group",
//	     "h": {"align": "stretch", "start": 10, "end": 10},
//	     "v": {"align": "start", "start": 10, "size": 120}},
//	    {"name": "ok", "kind": "button",
//	     "h": {"align": "end", "end": 20, "size": 80},
//	     "v": {"align": "end", "end": 20, "size": 30}}
//	  ]
//	}
//
// The same structure is accepted as TOML and YAML; [FormatFromPath] picks the
// encoding from the file extension. An omitted size is auto and resolves to
// the element's intrinsic size.
//
// Round trips are exact: [FromStore] records the stored numbers of every
// placement, never the rendered box, so an element keeps its alignment mode.
package scene
