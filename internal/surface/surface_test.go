package surface

import (
	"testing"
)

func TestFind_SelectorForms(t *testing.T) {
	d := NewDocument()
	btn := d.CreateElement("button", "add-btn")
	card := d.CreateElement("div", "flip-card")
	card.AddClass("card")

	if el, ok := d.Find("#add-btn"); !ok || el != btn {
		t.Fatalf("Find(#add-btn) = %v, %v; want the button handle", el, ok)
	}
	if el, ok := d.Find(".card"); !ok || el != card {
		t.Fatalf("Find(.card) = %v, %v; want the card handle", el, ok)
	}
	if el, ok := d.Find("button"); !ok || el != btn {
		t.Fatalf("Find(button) = %v, %v; want first button", el, ok)
	}
	if _, ok := d.Find("#nope"); ok {
		t.Fatalf("Find(#nope) should report not found")
	}
	if _, ok := d.Find(""); ok {
		t.Fatalf("Find(\"\") should report not found")
	}
}

func TestToggleClass_RoundTrip(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div", "box")

	if got := el.ToggleClass("spinning"); !got {
		t.Fatalf("first toggle: got %v, want true", got)
	}
	if !el.HasClass("spinning") {
		t.Fatalf("class should be present after first toggle")
	}
	if got := el.ToggleClass("spinning"); got {
		t.Fatalf("second toggle: got %v, want false", got)
	}
	if el.HasClass("spinning") {
		t.Fatalf("class should be absent after second toggle")
	}
}

func TestDispatch_ListenersInOrder(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("button", "b")

	var got []int
	el.On("click", func(Event) { got = append(got, 1) })
	el.On("click", func(Event) { got = append(got, 2) })
	el.Click()

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("listeners ran as %v, want [1 2]", got)
	}
}

func TestDispatch_TargetPreserved(t *testing.T) {
	d := NewDocument()
	overlay := d.CreateElement("div", "demo-modal")

	var target string
	overlay.On("click", func(ev Event) { target = ev.Target })

	// A click forwarded from inside the modal keeps the inner target,
	// which is how backdrop-close tells inside from outside.
	overlay.Dispatch(Event{Type: "click", Target: "modal-box"})
	if target != "modal-box" {
		t.Fatalf("forwarded target = %q, want modal-box", target)
	}

	overlay.Click()
	if target != "demo-modal" {
		t.Fatalf("direct click target = %q, want demo-modal", target)
	}
}

func TestDispatchKey_DocumentListeners(t *testing.T) {
	d := NewDocument()
	fired := 0
	d.OnKey("esc", func(ev Event) {
		if ev.Type != "keydown" || ev.Key != "esc" {
			t.Fatalf("unexpected event %+v", ev)
		}
		fired++
	})

	d.DispatchKey("esc")
	d.DispatchKey("enter") // no listener, no effect
	if fired != 1 {
		t.Fatalf("esc listener fired %d times, want 1", fired)
	}
}

func TestChanged_CoalescedNotification(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div", "x")

	// Multiple mutations coalesce into at least one pending notification.
	el.AddClass("a")
	el.SetText("hello")
	el.SetAttr("aria-hidden", "true")

	select {
	case <-d.Changed():
	default:
		t.Fatalf("expected a pending change notification")
	}
}

func TestReflow_BumpsGeneration(t *testing.T) {
	d := NewDocument()
	g0 := d.LayoutGen()
	if g := d.Reflow(); g != g0+1 {
		t.Fatalf("Reflow() = %d, want %d", g, g0+1)
	}
}
