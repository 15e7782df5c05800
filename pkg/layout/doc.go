// Package layout holds the element store of a canvas: element records, the
// control catalog, z ordering, naming rules and geometric containment.
//
// The store is flat. A group or border "contains" whatever lies inside its
// rendered box and is stacked above it; nothing else records a parent. This
// keeps containment a pure function of the current geometry, so a child
// dragged out of a group simply stops being its child.
package layout
