package world

import "testing"

type sessionInfo struct {
	Name string
}

func TestInsertGetRemove(t *testing.T) {
	w := New()
	if Has[*sessionInfo](w) {
		t.Fatalf("expected empty world")
	}
	Insert(w, &sessionInfo{Name: "main"})
	got, ok := Get[*sessionInfo](w)
	if !ok {
		t.Fatalf("expected stored resource")
	}
	if got.Name != "main" {
		t.Fatalf("expected name %q, got %q", "main", got.Name)
	}

	Insert(w, &sessionInfo{Name: "other"})
	got, _ = Get[*sessionInfo](w)
	if got.Name != "other" {
		t.Fatalf("expected replacement to win, got %q", got.Name)
	}

	removed, ok := Remove[*sessionInfo](w)
	if !ok || removed.Name != "other" {
		t.Fatalf("expected removal to return the stored instance")
	}
	if Has[*sessionInfo](w) {
		t.Fatalf("expected resource gone after removal")
	}
	if _, ok := Remove[*sessionInfo](w); ok {
		t.Fatalf("expected second removal to report absence")
	}
}

func TestGetDistinctTypes(t *testing.T) {
	type other struct{ n int }
	w := New()
	Insert(w, &sessionInfo{Name: "a"})
	Insert(w, &other{n: 1})
	if _, ok := Get[*sessionInfo](w); !ok {
		t.Fatalf("expected sessionInfo present")
	}
	if _, ok := Get[*other](w); !ok {
		t.Fatalf("expected other present")
	}
}

func TestDiagnostics(t *testing.T) {
	w := New()
	if len(w.Diagnostics()) != 0 {
		t.Fatalf("expected no diagnostics initially")
	}
	w.Warnf(MissingStack, "no region stack is live")
	w.Warnf(StackUnderflow, "pop on empty stack (depth %d)", 0)
	diags := w.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].Kind != MissingStack {
		t.Fatalf("expected kind %q, got %q", MissingStack, diags[0].Kind)
	}
	if diags[1].Message != "pop on empty stack (depth 0)" {
		t.Fatalf("unexpected message %q", diags[1].Message)
	}

	diags[0].Kind = UnbalancedNesting
	if w.Diagnostics()[0].Kind != MissingStack {
		t.Fatalf("expected Diagnostics to return a copy")
	}

	w.ClearDiagnostics()
	if len(w.Diagnostics()) != 0 {
		t.Fatalf("expected diagnostics cleared")
	}
}
