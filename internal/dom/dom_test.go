package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestAttributes(t *testing.T) {
	n := NewElement("div", html.Attribute{Key: "option", Val: "a"})

	if v, ok := Attr(n, "option"); !ok || v != "a" {
		t.Fatalf("Attr(option) = %q, %v; want \"a\", true", v, ok)
	}

	SetAttr(n, "option", "b")
	if v, _ := Attr(n, "option"); v != "b" {
		t.Errorf("after SetAttr: got %q, want \"b\"", v)
	}
	if len(n.Attr) != 1 {
		t.Errorf("SetAttr on existing key appended: %d attrs", len(n.Attr))
	}

	ToggleAttr(n, "selected", true)
	if !HasAttr(n, "selected") {
		t.Error("ToggleAttr(true) did not set presence flag")
	}
	ToggleAttr(n, "selected", false)
	if HasAttr(n, "selected") {
		t.Error("ToggleAttr(false) did not remove presence flag")
	}

	RemoveAttr(n, "missing")
	if len(n.Attr) != 1 {
		t.Errorf("RemoveAttr on missing key changed attrs: %v", n.Attr)
	}
}

func TestTabIndex(t *testing.T) {
	n := NewElement("div")
	if got := TabIndex(n, 7); got != 7 {
		t.Errorf("absent tabindex: got %d, want 7", got)
	}
	SetTabIndex(n, -1)
	if got := TabIndex(n, 7); got != -1 {
		t.Errorf("after SetTabIndex(-1): got %d", got)
	}
	SetAttr(n, "tabindex", "nope")
	if got := TabIndex(n, 3); got != 3 {
		t.Errorf("invalid tabindex: got %d, want default 3", got)
	}
}

func TestFindAllAndClosest(t *testing.T) {
	doc, err := ParseString(`<div id="c"><p option="x"><span id="inner">X</span></p><p>none</p><p option="y">Y</p></div>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	container := First(doc, "#c")
	if container == nil {
		t.Fatal("container not found")
	}

	opts := FindAll(container, "[option]")
	if len(opts) != 2 {
		t.Fatalf("FindAll([option]) = %d nodes, want 2", len(opts))
	}
	if v, _ := Attr(opts[1], "option"); v != "y" {
		t.Errorf("document order broken: second option = %q", v)
	}

	inner := First(doc, "#inner")
	if got := Closest(inner, "[option]"); got != opts[0] {
		t.Errorf("Closest(inner) = %v, want first option", got)
	}
	if got := Closest(opts[1], "[option]"); got != opts[1] {
		t.Error("Closest should match the node itself")
	}
	if got := Closest(container, "[option]"); got != nil {
		t.Errorf("Closest(container) = %v, want nil", got)
	}
	if !Contains(container, inner) {
		t.Error("Contains(container, inner) = false")
	}
}

func TestIsRTL(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"default ltr", `<html><body><div id="x"></div></body></html>`, false},
		{"rtl", `<html dir="rtl"><body><div id="x"></div></body></html>`, true},
		{"uppercase", `<html dir="RTL"><body><div id="x"></div></body></html>`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseString(tt.doc)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := IsRTL(First(doc, "#x")); got != tt.want {
				t.Errorf("IsRTL = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppendAndDetach(t *testing.T) {
	parent := NewElement("div")
	a := NewElement("input")
	b := NewElement("input")
	AppendChildren(parent, a, b)
	if parent.FirstChild != a || parent.LastChild != b {
		t.Fatal("children not appended in order")
	}
	Detach(a)
	if parent.FirstChild != b || a.Parent != nil {
		t.Error("Detach did not remove node")
	}
	Detach(a)

	out := RenderString(parent)
	if strings.Count(out, "<input") != 1 {
		t.Errorf("render = %q, want one input", out)
	}
}

func TestEventFlags(t *testing.T) {
	e := NewKeyDown(nil, KeyArrowDown)
	if e.DefaultPrevented() || e.Stopped() {
		t.Fatal("fresh event should have no flags set")
	}
	e.PreventDefault()
	e.StopPropagation()
	if !e.DefaultPrevented() || !e.Stopped() {
		t.Error("flags not recorded")
	}
}

func TestText(t *testing.T) {
	doc, _ := ParseString(`<div id="t">  Hello <b>big</b>
	 world </div>`)
	if got := Text(First(doc, "#t")); got != "Hello big world" {
		t.Errorf("Text = %q", got)
	}
}
