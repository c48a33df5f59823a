// Package world provides the shared-state container the composition engine
// builds against: a type-keyed resource store, a diagnostics collector for
// recoverable build failures, and a registry of cached computation units.
package world

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/uiscript/internal/logging/events"
)

// Kind classifies a recoverable diagnostic raised while a build pass drains.
type Kind string

const (
	// MissingContext means no rendering context was available when a
	// top-level region tried to open.
	MissingContext Kind = "missing-context"
	// MissingStack means a container or widget command ran without a live
	// region stack.
	MissingStack Kind = "missing-stack"
	// StackUnderflow means a close or draw command needed a region that was
	// not there.
	StackUnderflow Kind = "stack-underflow"
	// UnbalancedNesting means a top-level close found more than one region
	// still open.
	UnbalancedNesting Kind = "unbalanced-nesting"
)

// Diagnostic records one recoverable inconsistency observed during a drain.
type Diagnostic struct {
	Kind    Kind
	Message string
}

// World owns application resources keyed by their concrete type. A single
// build pass accesses it exclusively; it is not safe for concurrent use.
type World struct {
	resources map[reflect.Type]interface{}
	systems   map[reflect.Type]*systemEntry
	diags     []Diagnostic
}

// New returns an empty World.
func New() *World {
	return &World{
		resources: make(map[reflect.Type]interface{}),
		systems:   make(map[reflect.Type]*systemEntry),
	}
}

// Insert stores value as the single instance of its type, replacing any
// previous instance.
func Insert[T any](w *World, value T) {
	w.resources[reflect.TypeOf((*T)(nil)).Elem()] = value
}

// Get retrieves the stored instance of T, if any.
func Get[T any](w *World) (T, bool) {
	v, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Remove takes the stored instance of T out of the world and returns it.
func Remove[T any](w *World) (T, bool) {
	key := reflect.TypeOf((*T)(nil)).Elem()
	v, ok := w.resources[key]
	if !ok {
		var zero T
		return zero, false
	}
	delete(w.resources, key)
	return v.(T), true
}

// Has reports whether an instance of T is stored.
func Has[T any](w *World) bool {
	_, ok := w.resources[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

// Warnf records a recoverable diagnostic and emits a trace entry. Malformed
// build scripts degrade into missing UI plus diagnostics, never a crash.
func (w *World) Warnf(kind Kind, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.diags = append(w.diags, Diagnostic{Kind: kind, Message: msg})
	events.Engine.Warn(string(kind), msg)
}

// Diagnostics returns a copy of the diagnostics recorded so far.
func (w *World) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(w.diags))
	copy(out, w.diags)
	return out
}

// ClearDiagnostics discards recorded diagnostics, typically between frames.
func (w *World) ClearDiagnostics() {
	w.diags = nil
}
