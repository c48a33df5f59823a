package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/uiscript/region"
	"github.com/atomicstack/uiscript/script"
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/widget"
	"github.com/atomicstack/uiscript/world"
	"github.com/charmbracelet/x/ansi"
)

func TestAddDrawsIntoSurface(t *testing.T) {
	w := world.New()
	s := surface.New(30)
	u := New(w, s)
	resp := u.Add(widget.Label{Text: "direct"})
	if resp.Lines != 1 || s.LineCount() != 1 {
		t.Fatalf("expected one drawn line, got %+v / %d", resp, s.LineCount())
	}
}

func TestShowComposesSynchronously(t *testing.T) {
	w := world.New()
	s := surface.New(30)
	u := New(w, s)
	var inner widget.Response
	resp := u.Show(region.Group{}, func(u UI) {
		inner = u.Add(widget.Label{Text: "nested"})
	})
	if inner.Lines != 1 {
		t.Fatalf("expected nested widget drawn, got %+v", inner)
	}
	if resp.Lines != 3 {
		t.Fatalf("expected boxed rows reported, got %d", resp.Lines)
	}
	if !strings.Contains(ansi.Strip(strings.Join(s.Lines(), "\n")), "nested") {
		t.Fatalf("expected nested content reconciled into the parent")
	}
}

func TestTryCtxMissingScreen(t *testing.T) {
	w := world.New()
	if _, ok := TryCtx(w); ok {
		t.Fatalf("expected no context without a screen resource")
	}
	diags := w.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != world.MissingContext {
		t.Fatalf("expected one missing-context diagnostic, got %+v", diags)
	}
}

func TestCtxShowRoot(t *testing.T) {
	w := world.New()
	world.Insert(w, surface.NewScreen(30, 10))
	ctx, ok := TryCtx(w)
	if !ok {
		t.Fatalf("expected context with a screen resource")
	}
	ctx.Show(region.Panel{Title: "root", Position: region.Top}, func(u UI) {
		u.Add(widget.Label{Text: "body"})
	})
	frame := ansi.Strip(ctx.Screen().Frame())
	if !strings.Contains(frame, "root") || !strings.Contains(frame, "body") {
		t.Fatalf("expected root and body in frame, got %q", frame)
	}
}

// frameLabel is a cached unit used by both composition strategies below.
type frameLabel struct{}

func (frameLabel) Init(w *world.World) world.SystemFunc[*widget.Draw, widget.Response] {
	return func(w *world.World, d *widget.Draw) widget.Response {
		d.Surface.WriteLine("cached line")
		return widget.Response{Lines: 1}
	}
}

func TestRunCachedAgainstSurface(t *testing.T) {
	w := world.New()
	s := surface.New(30)
	u := New(w, s)
	resp, err := u.RunCached(frameLabel{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Lines != 1 || s.LineCount() != 1 {
		t.Fatalf("expected cached unit to draw, got %+v / %d", resp, s.LineCount())
	}
}

// echoExtra reports the extra value it was called with.
type echoExtra struct{}

func (echoExtra) Init(w *world.World) world.SystemFunc[*widget.Draw, widget.Response] {
	return func(w *world.World, d *widget.Draw) widget.Response {
		value, _ := d.Extra.(string)
		return widget.Response{Value: value}
	}
}

func TestRunCachedWithExtra(t *testing.T) {
	w := world.New()
	u := New(w, surface.New(30))
	first, err := u.RunCachedWith(echoExtra{}, "one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := u.RunCachedWith(echoExtra{}, "two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Value != "one" || second.Value != "two" {
		t.Fatalf("expected each call to see its own extra, got %q then %q", first.Value, second.Value)
	}
}

func TestImmediateMatchesDeferred(t *testing.T) {
	build := func(w *world.World) string {
		scr := surface.NewScreen(30, 10)
		world.Insert(w, scr)
		q := script.NewQueue()
		q.ShowRoot(region.Panel{Title: "t", Position: region.Top}, func(b *script.Builder) {
			b.Show(region.Group{}, nil, func(b *script.Builder) {
				b.Add(widget.Label{Text: "x"}, nil)
			})
		})
		q.Drain(w)
		world.Remove[*surface.Screen](w)
		return scr.Frame()
	}
	direct := func(w *world.World) string {
		scr := surface.NewScreen(30, 10)
		world.Insert(w, scr)
		ctx, _ := TryCtx(w)
		ctx.Show(region.Panel{Title: "t", Position: region.Top}, func(u UI) {
			u.Show(region.Group{}, func(u UI) {
				u.Add(widget.Label{Text: "x"})
			})
		})
		world.Remove[*surface.Screen](w)
		return scr.Frame()
	}

	deferred := build(world.New())
	immediate := direct(world.New())
	if deferred != immediate {
		t.Fatalf("expected identical frames from both strategies:\n%q\nvs\n%q", deferred, immediate)
	}
}
