// Package observability provides hooks for metrics and tracing of editor
// activity.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about drags and non-drag edits.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the engine packages
// never import a metrics backend.
//
// The editor handles every event synchronously and never blocks, so hook
// methods take no context.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetEditHooks(&myEditHooks{})
//	    // ... run application
//	}
//
// The editor calls hooks to emit events:
//
//	observability.Drag().OnDragStart("move", "button1", 0)
//	// ... pointer updates ...
//	observability.Drag().OnDragEnd("move", "button1", "release", duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from pointer-driven drags.
type DragHooks interface {
	// OnDragStart records a new drag session. followers counts the elements
	// moving in lockstep with the target.
	OnDragStart(mode, element string, followers int)

	// OnDragUpdate records one applied pointer update.
	OnDragUpdate(mode, element string, dx, dy float64, flipped bool)

	// OnDragEnd records the end of a session. reason is "release", "cancel"
	// or "lost".
	OnDragEnd(mode, element, reason string, duration time.Duration)
}

// =============================================================================
// Edit Hooks
// =============================================================================

// EditHooks receives events from one-shot edits.
type EditHooks interface {
	// OnBell records a gesture that had no effect.
	OnBell(op, element string)

	// OnRealign records an explicit alignment change.
	OnRealign(element, horizontal, vertical string)

	// OnOrderChange records a z-order change. moved counts the restacked
	// elements, container contents included.
	OnOrderChange(op, element string, moved int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string, string, int)                     {}
func (NoopDragHooks) OnDragUpdate(string, string, float64, float64, bool) {}
func (NoopDragHooks) OnDragEnd(string, string, string, time.Duration)     {}

// NoopEditHooks is a no-op implementation of EditHooks.
type NoopEditHooks struct{}

func (NoopEditHooks) OnBell(string, string)             {}
func (NoopEditHooks) OnRealign(string, string, string)  {}
func (NoopEditHooks) OnOrderChange(string, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks DragHooks = NoopDragHooks{}
	editHooks EditHooks = NoopEditHooks{}
	hooksMu   sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any editor is used.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetEditHooks registers custom edit hooks.
// This should be called once at application startup before any editor is used.
func SetEditHooks(h EditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Edit returns the registered edit hooks.
func Edit() EditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	editHooks = NoopEditHooks{}
}
