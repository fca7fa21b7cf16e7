package wire

import (
	"testing"
	"time"

	"uiplay/internal/model"
	"uiplay/internal/sched"
	"uiplay/internal/surface"
)

func setup(t *testing.T) (*surface.Document, *sched.Scheduler, *Context, []Warning) {
	t.Helper()
	doc := NewDemoDocument()
	s := sched.New()
	t.Cleanup(s.Shutdown)
	wctx, warns := Init(doc, s, Options{})
	return doc, s, wctx, warns
}

func click(t *testing.T, doc *surface.Document, selector string) {
	t.Helper()
	el, ok := doc.Find(selector)
	if !ok {
		t.Fatalf("no element %s", selector)
	}
	el.Click()
}

func outText(t *testing.T, doc *surface.Document, selector string) string {
	t.Helper()
	el, ok := doc.Find(selector)
	if !ok {
		t.Fatalf("no element %s", selector)
	}
	return el.Text()
}

func TestInit_DemoPageHasNoWarnings(t *testing.T) {
	_, _, _, warns := setup(t)
	if len(warns) != 0 {
		t.Fatalf("full demo page produced warnings: %v", warns)
	}
}

func TestAddButton_WritesSum(t *testing.T) {
	doc, _, _, _ := setup(t)

	click(t, doc, "#add-btn")
	if got := outText(t, doc, "#add-out"); got != "sum: 5" {
		t.Fatalf("add output = %q, want sum: 5 (defaults 2+3)", got)
	}

	a, _ := doc.Find("#add-a")
	a.SetText("not a number")
	click(t, doc, "#add-btn")
	if got := outText(t, doc, "#add-out"); got != "sum: NaN" {
		t.Fatalf("add output = %q, want sum: NaN", got)
	}
}

func TestGreetButton_DefaultsToGuest(t *testing.T) {
	doc, _, _, _ := setup(t)

	click(t, doc, "#greet-btn")
	if got := outText(t, doc, "#greet-out"); got != "Hello, guest!" {
		t.Fatalf("greet output = %q", got)
	}

	name, _ := doc.Find("#greet-name")
	name.SetText("Ada")
	click(t, doc, "#greet-btn")
	if got := outText(t, doc, "#greet-out"); got != "Hello, Ada!" {
		t.Fatalf("greet output = %q", got)
	}
}

func TestCounterScenario_GlobalCountsLocalDoesNot(t *testing.T) {
	doc, _, wctx, _ := setup(t)

	for i := 0; i < 3; i++ {
		click(t, doc, "#global-btn")
	}
	if got := outText(t, doc, "#counter-out"); got != "globalCounter is now: 3" {
		t.Fatalf("counter display = %q, want globalCounter is now: 3", got)
	}

	for i := 0; i < 7; i++ {
		click(t, doc, "#local-btn")
	}
	if got := outText(t, doc, "#counter-out"); got != "globalCounter is now: 3" {
		t.Fatalf("local clicks changed the global display: %q", got)
	}
	if got := outText(t, doc, "#local-out"); got != "localCounter is now: 1" {
		t.Fatalf("local display = %q, want localCounter is now: 1", got)
	}
	if wctx.Counters().Global() != 3 {
		t.Fatalf("context counter = %d, want 3", wctx.Counters().Global())
	}
}

func TestModal_OpenCloseButtons(t *testing.T) {
	doc, _, _, _ := setup(t)
	modal, _ := doc.Find("#demo-modal")

	click(t, doc, "#modal-open-btn")
	if !modal.HasClass("open") || modal.Attr("aria-hidden") != "false" {
		t.Fatalf("modal not open: classes=%v aria-hidden=%q", modal.Classes(), modal.Attr("aria-hidden"))
	}

	click(t, doc, "#modal-close-btn")
	if modal.HasClass("open") || modal.Attr("aria-hidden") != "true" {
		t.Fatalf("modal not closed: classes=%v aria-hidden=%q", modal.Classes(), modal.Attr("aria-hidden"))
	}
}

func TestModal_EscapeClosesRegardlessOfFocus(t *testing.T) {
	doc, _, _, _ := setup(t)
	modal, _ := doc.Find("#demo-modal")

	click(t, doc, "#modal-open-btn")
	doc.DispatchKey("esc")
	if modal.Attr("aria-hidden") != "true" {
		t.Fatalf("esc did not close the modal, aria-hidden=%q", modal.Attr("aria-hidden"))
	}
}

func TestModal_BackdropClickClosesButContentClickDoesNot(t *testing.T) {
	doc, _, _, _ := setup(t)
	modal, _ := doc.Find("#demo-modal")

	click(t, doc, "#modal-open-btn")
	// A click inside the content box bubbles to the container with the
	// inner target; the modal must stay open.
	modal.Dispatch(surface.Event{Type: "click", Target: "modal-box"})
	if !modal.HasClass("open") {
		t.Fatalf("content click closed the modal")
	}

	modal.Click()
	if modal.HasClass("open") || modal.Attr("aria-hidden") != "true" {
		t.Fatalf("backdrop click did not close the modal")
	}
}

func TestSpinAndFlipButtons_ToggleClasses(t *testing.T) {
	doc, _, _, _ := setup(t)
	spin, _ := doc.Find("#spin-box")
	card, _ := doc.Find("#flip-card")

	click(t, doc, "#spin-btn")
	if !spin.HasClass("spinning") {
		t.Fatalf("spin button did not add spinning class")
	}
	click(t, doc, "#spin-btn")
	if spin.HasClass("spinning") {
		t.Fatalf("second spin click did not remove spinning class")
	}

	click(t, doc, "#flip-btn")
	if !card.HasClass("flipped") {
		t.Fatalf("flip button did not add flipped class")
	}
}

func TestPulseButton_SelfCleaningAnimation(t *testing.T) {
	doc := NewDemoDocument()
	s := sched.New()
	t.Cleanup(s.Shutdown)
	if _, warns := Init(doc, s, Options{PulseDur: 10 * time.Millisecond}); len(warns) != 0 {
		t.Fatalf("warnings: %v", warns)
	}
	box, _ := doc.Find("#pulse-box")

	click(t, doc, "#pulse-btn")
	if !box.HasClass("anim-pop") {
		t.Fatalf("pulse class missing right after click")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && box.HasClass("anim-pop") {
		time.Sleep(2 * time.Millisecond)
	}
	if box.HasClass("anim-pop") {
		t.Fatalf("pulse class was never removed")
	}
}

func TestInit_MissingElementWarnsButSiblingsAttach(t *testing.T) {
	doc := NewDemoDocument()
	// Simulate a broken page: no global button. (Ids are registered at
	// creation; build a fresh page without it instead of removing.)
	doc = pageWithout(doc, "global-btn")
	s := sched.New()
	t.Cleanup(s.Shutdown)

	_, warns := Init(doc, s, Options{})
	if len(warns) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warns)
	}
	if warns[0].Binding != "increment global" || warns[0].Selector != "#global-btn" {
		t.Fatalf("warning = %+v", warns[0])
	}

	// Sibling bindings still work.
	click(t, doc, "#greet-btn")
	if got := outText(t, doc, "#greet-out"); got != "Hello, guest!" {
		t.Fatalf("sibling binding broken after warning: %q", got)
	}
	click(t, doc, "#modal-open-btn")
	modal, _ := doc.Find("#demo-modal")
	if !modal.HasClass("open") {
		t.Fatalf("modal binding broken after warning")
	}
}

func TestObserver_SeesDispatchedInteractions(t *testing.T) {
	doc := NewDemoDocument()
	s := sched.New()
	t.Cleanup(s.Shutdown)

	type rec struct {
		kind   model.EventKind
		target string
	}
	var seen []rec
	Init(doc, s, Options{Observer: func(k model.EventKind, target, _ string) {
		seen = append(seen, rec{k, target})
	}})

	click(t, doc, "#global-btn")
	click(t, doc, "#modal-open-btn")
	doc.DispatchKey("esc")

	want := []rec{
		{model.EventKindClick, "global-btn"},
		{model.EventKindClick, "modal-open-btn"},
		{model.EventKindKey, "esc"},
	}
	if len(seen) != len(want) {
		t.Fatalf("observer saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("observer event %d = %+v, want %+v", i, seen[i], want[i])
		}
	}
}

// pageWithout rebuilds the demo page minus one element id.
func pageWithout(src *surface.Document, dropID string) *surface.Document {
	out := surface.NewDocument()
	for _, id := range demoElementIDs {
		if id == dropID {
			continue
		}
		el, _ := src.Find("#" + id)
		dup := out.CreateElement(el.Tag(), id)
		dup.SetText(el.Text())
		if v := el.Attr("aria-hidden"); v != "" {
			dup.SetAttr("aria-hidden", v)
		}
	}
	return out
}

var demoElementIDs = []string{
	"add-a", "add-b", "add-btn", "add-out",
	"greet-name", "greet-btn", "greet-out",
	"local-btn", "local-out", "global-btn", "counter-out",
	"flip-card", "flip-btn", "spin-box", "spin-btn",
	"pulse-box", "pulse-btn",
	"demo-modal", "modal-box", "modal-open-btn", "modal-close-btn",
}
