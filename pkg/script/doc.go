// Package script replays gesture scripts against an editor.
//
// A script is one command per line. Coordinates are canvas pixels and #
// starts a comment:
//
//	canvas 400 300
//	add button ok            # lands at 12,12 and is selected
//	press left 20 20         # grab it
//	move 400 20              # drag past the right edge
//	release
//	expect ok align end start
//	expect ok 300 12 100 100
//
// Commands:
//
//	canvas W H                      resize the canvas
//	add KIND [NAME]                 add and select a new element
//	select NAME                     select an element
//	press left|right X Y [shift]    pointer press; left moves, right resizes
//	move X Y                        pointer motion with the button held
//	release | cancel | lost         end the drag
//	nudge DIR [big] [detach]        arrow-key nudge of the selection
//	align H V                       realign the selection
//	front | back | delete           restack or remove the selection
//	rename NAME                     rename the selection
//	expect NAME X Y W H             assert the rendered box, within 1px
//	expect NAME align H V           assert the alignment modes
//
// Gestures with no effect do not fail a replay; they are counted in the
// [Report] as bells.
package script
