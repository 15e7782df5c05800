// Package editor is the single coordinating owner of a canvas.
//
// An [Editor] holds the element store, the selection and the drag state
// machine:
//
//	Idle --left press on element--> DraggingMove
//	Idle --right press on resizable element--> DraggingSize
//	Dragging* --release, capture loss, cancel, button-less motion--> Idle
//
// Shells (the terminal UI, the HTTP API, gesture scripts) translate their
// input into PointerDown, PointerMove and PointerUp calls and read the
// resulting placements back from the store. One-shot edits such as nudging,
// realignment and z-order changes live here too, so every mutation of a
// placement goes through one owner.
//
// Gestures that have no effect "ring the bell": they are logged, reported to
// [observability.EditHooks] and passed to the callback set with [WithBell].
package editor
