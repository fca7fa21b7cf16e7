// Package surface is an injectable UI surface: an in-memory document of
// elements with class sets, attributes and event listeners.
//
// The interaction helpers are written against this surface instead of a real
// toolkit, so they can be exercised headless in tests and rendered by any
// frontend (the bundled TUI is one such frontend). Lookup failures are
// reported with an ok-bool, never a panic.
package surface

import (
	"sort"
	"strings"
	"sync"
)

// Event is a user-originated interaction delivered to listeners.
type Event struct {
	Type   string // "click", "keydown"
	Target string // element id the event originated on ("" for document-level)
	Key    string // key name for "keydown" events, e.g. "esc"
}

// Handler reacts to an Event. Handlers run synchronously on the goroutine
// that dispatched the event.
type Handler func(Event)

// Element is an opaque handle to one node of the document.
//
// All mutators go through the owning document's lock and wake its change
// subscribers, so a renderer repaints after every mutation.
type Element struct {
	doc *Document

	id   string
	tag  string
	text string

	classes map[string]struct{}
	attrs   map[string]string

	listeners map[string][]Handler
}

// Document owns a flat set of elements plus document-level listeners
// (used for global key handling).
type Document struct {
	mu sync.Mutex

	order     []*Element
	byID      map[string]*Element
	docAll    map[string][]Handler
	notify    chan struct{}
	layoutGen uint64
}

func NewDocument() *Document {
	return &Document{
		byID:   map[string]*Element{},
		docAll: map[string][]Handler{},
		notify: make(chan struct{}, 1),
	}
}

// CreateElement adds an element with the given tag and id and returns its
// handle. A duplicate id replaces the previous mapping (last writer wins),
// matching what a template with a repeated id would do.
func (d *Document) CreateElement(tag, id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	el := &Element{
		doc:       d,
		id:        id,
		tag:       tag,
		classes:   map[string]struct{}{},
		attrs:     map[string]string{},
		listeners: map[string][]Handler{},
	}
	d.order = append(d.order, el)
	if id != "" {
		d.byID[id] = el
	}
	return el
}

// Find resolves a selector to an element handle.
//
// Supported selector forms, deliberately tiny:
//
//	#id      — by element id
//	.class   — first element (in creation order) carrying the class
//	tag      — first element with the tag
//
// The ok result is false when nothing matches; callers must treat that as
// a no-op signal, not an error.
func (d *Document) Find(selector string) (*Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sel := strings.TrimSpace(selector)
	if sel == "" {
		return nil, false
	}
	switch {
	case strings.HasPrefix(sel, "#"):
		el, ok := d.byID[sel[1:]]
		return el, ok
	case strings.HasPrefix(sel, "."):
		want := sel[1:]
		for _, el := range d.order {
			if _, ok := el.classes[want]; ok {
				return el, true
			}
		}
	default:
		for _, el := range d.order {
			if el.tag == sel {
				return el, true
			}
		}
	}
	return nil, false
}

// Reflow forces a layout recalculation. The in-memory surface has no real
// layout, but bumping the generation makes a remove-then-add class pair
// observable as two distinct states instead of collapsing into a no-op,
// which is what lets an animation class re-trigger.
func (d *Document) Reflow() uint64 {
	d.mu.Lock()
	d.layoutGen++
	gen := d.layoutGen
	d.mu.Unlock()
	d.wake()
	return gen
}

// LayoutGen returns the current layout generation (test hook).
func (d *Document) LayoutGen() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.layoutGen
}

// OnKey registers a document-level listener for a key name ("esc", "enter",
// single runes). Key listeners fire regardless of which element has focus.
func (d *Document) OnKey(key string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.docAll[key] = append(d.docAll[key], h)
}

// DispatchKey delivers a document-level keydown to every listener
// registered for that key, in registration order.
func (d *Document) DispatchKey(key string) {
	d.mu.Lock()
	hs := append([]Handler(nil), d.docAll[key]...)
	d.mu.Unlock()
	ev := Event{Type: "keydown", Key: key}
	for _, h := range hs {
		h(ev)
	}
	d.wake()
}

// Changed returns a coalesced notification channel: it receives at least
// one value after any mutation since the last receive. Renderers block on
// it to know when to repaint.
func (d *Document) Changed() <-chan struct{} { return d.notify }

func (d *Document) wake() {
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

func (e *Element) ID() string  { return e.id }
func (e *Element) Tag() string { return e.tag }

func (e *Element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.text
}

func (e *Element) SetText(s string) {
	e.doc.mu.Lock()
	e.text = s
	e.doc.mu.Unlock()
	e.doc.wake()
}

// HasClass reports membership of a single class.
func (e *Element) HasClass(name string) bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	_, ok := e.classes[name]
	return ok
}

func (e *Element) AddClass(name string) {
	e.doc.mu.Lock()
	e.classes[name] = struct{}{}
	e.doc.mu.Unlock()
	e.doc.wake()
}

func (e *Element) RemoveClass(name string) {
	e.doc.mu.Lock()
	delete(e.classes, name)
	e.doc.mu.Unlock()
	e.doc.wake()
}

// ToggleClass flips membership and returns the resulting state
// (true when the class is now present).
func (e *Element) ToggleClass(name string) bool {
	e.doc.mu.Lock()
	_, had := e.classes[name]
	if had {
		delete(e.classes, name)
	} else {
		e.classes[name] = struct{}{}
	}
	e.doc.mu.Unlock()
	e.doc.wake()
	return !had
}

// Classes returns the class set sorted, for stable rendering and tests.
func (e *Element) Classes() []string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (e *Element) Attr(name string) string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.attrs[name]
}

func (e *Element) SetAttr(name, value string) {
	e.doc.mu.Lock()
	e.attrs[name] = value
	e.doc.mu.Unlock()
	e.doc.wake()
}

// On registers a listener for an event type on this element.
func (e *Element) On(eventType string, h Handler) {
	e.doc.mu.Lock()
	e.listeners[eventType] = append(e.listeners[eventType], h)
	e.doc.mu.Unlock()
}

// Click dispatches a click event targeting this element.
func (e *Element) Click() { e.Dispatch(Event{Type: "click", Target: e.id}) }

// Dispatch delivers ev to this element's listeners for ev.Type, in
// registration order. The event's Target is preserved, so a container can
// distinguish clicks on itself from clicks forwarded by children.
func (e *Element) Dispatch(ev Event) {
	e.doc.mu.Lock()
	hs := append([]Handler(nil), e.listeners[ev.Type]...)
	e.doc.mu.Unlock()
	for _, h := range hs {
		h(ev)
	}
	e.doc.wake()
}
