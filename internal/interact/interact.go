// Package interact holds the demo's interaction helpers: small value
// helpers, the scope-demonstration counters, and the class/attribute
// helpers written against the injected surface.
//
// Every surface helper signals a failed element lookup with a false/zero
// result and no side effect; none of them panic.
package interact

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"uiplay/internal/sched"
	"uiplay/internal/surface"
)

// DefaultAnimationDuration is how long a one-shot animation class stays on
// an element before AnimateOnce removes it again.
const DefaultAnimationDuration = 700 * time.Millisecond

// Coerce converts a free-form input-field value to a number the way a
// display field does: surrounding whitespace ignored, the empty string is
// zero, anything unparseable is NaN.
func Coerce(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// Add sums two input-field values after numeric coercion. Unparseable
// input poisons the result to NaN rather than raising an error; the demo
// page shows NaN as-is.
func Add(a, b string) float64 {
	return Coerce(a) + Coerce(b)
}

// Greet formats a greeting for name, defaulting to "guest" when the field
// is empty.
func Greet(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "guest"
	}
	return fmt.Sprintf("Hello, %s!", name)
}

// IncrementLocal creates a fresh counter, increments it and returns the
// result. It always returns 1: local state does not survive the call.
func IncrementLocal() int {
	counter := 0
	counter++
	return counter
}

// Counters is the wiring context's shared counter state. It replaces the
// ambient module-level counter of the original demo: the wiring owns one
// instance and threads it into the handlers that need it.
type Counters struct {
	global int
}

// IncrementGlobal bumps the shared counter and returns the new value.
// Called N times in sequence it returns 1..N; the counter never decreases.
func (c *Counters) IncrementGlobal() int {
	c.global++
	return c.global
}

// Global returns the current shared counter value without changing it.
func (c *Counters) Global() int { return c.global }

// ToggleClass flips membership of class on the selected element and
// returns the resulting state. A failed lookup returns false with no side
// effect, indistinguishable from a toggle-off by design: both mean "the
// class is not on the page now".
func ToggleClass(doc *surface.Document, selector, class string) bool {
	el, ok := doc.Find(selector)
	if !ok {
		return false
	}
	return el.ToggleClass(class)
}

// AnimateOnce plays a one-shot animation class on the selected element:
// the class is removed first and a reflow forced, so a class that is still
// present from an earlier run re-triggers instead of being ignored, then
// the class is added and its removal scheduled after dur (dur <= 0 means
// DefaultAnimationDuration).
//
// The returned handle cancels the pending removal; ok is false when the
// element does not exist, in which case nothing was scheduled. Overlapping
// calls each schedule their own removal — the later removals find the
// class already gone, which is harmless.
func AnimateOnce(doc *surface.Document, s *sched.Scheduler, selector, class string, dur time.Duration) (sched.Handle, bool) {
	el, ok := doc.Find(selector)
	if !ok {
		return 0, false
	}
	if dur <= 0 {
		dur = DefaultAnimationDuration
	}
	el.RemoveClass(class)
	doc.Reflow()
	el.AddClass(class)
	h := s.SetTimeout(func() { el.RemoveClass(class) }, dur)
	return h, true
}

// OpenModal shows the selected modal container: adds the visibility class
// and flips aria-hidden to "false". Returns false when the container is
// missing.
func OpenModal(doc *surface.Document, selector string) bool {
	el, ok := doc.Find(selector)
	if !ok {
		return false
	}
	el.AddClass("open")
	el.SetAttr("aria-hidden", "false")
	return true
}

// CloseModal hides the selected modal container, the inverse of OpenModal.
func CloseModal(doc *surface.Document, selector string) bool {
	el, ok := doc.Find(selector)
	if !ok {
		return false
	}
	el.RemoveClass("open")
	el.SetAttr("aria-hidden", "true")
	return true
}
