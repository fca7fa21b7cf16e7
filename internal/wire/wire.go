// Package wire attaches the demo page's listeners. Each binding is
// registered in its own guarded block: a missing element produces a
// Warning and the remaining bindings still attach, instead of one bad
// lookup aborting the whole initialization.
package wire

import (
	"fmt"
	"math"
	"time"

	"uiplay/internal/config"
	"uiplay/internal/interact"
	"uiplay/internal/model"
	"uiplay/internal/sched"
	"uiplay/internal/surface"

	"go.uber.org/zap"
)

// Warning reports one binding that could not attach.
type Warning struct {
	Binding  string // what was being wired, e.g. "add"
	Selector string // the lookup that failed
}

func (w Warning) String() string {
	return fmt.Sprintf("wiring %q: no element matches %s", w.Binding, w.Selector)
}

// Observer receives every interaction the wiring dispatches. Used by the
// session recorder; nil means no observation.
type Observer func(kind model.EventKind, target, detail string)

// Options configures Init. The zero value is usable: default classes,
// default pulse duration, no observer, no logging.
type Options struct {
	Classes  config.ClassConfig
	PulseDur time.Duration
	Observer Observer
	Log      *zap.Logger
}

func (o *Options) fill() {
	if o.Classes == (config.ClassConfig{}) {
		o.Classes = config.Default().Classes
	}
	if o.PulseDur <= 0 {
		o.PulseDur = interact.DefaultAnimationDuration
	}
	if o.Observer == nil {
		o.Observer = func(model.EventKind, string, string) {}
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
}

// Context owns the state shared across handlers — today just the global
// counter. It replaces the ambient module-level counter of the original
// demo with state the initialization routine explicitly owns.
type Context struct {
	counters interact.Counters
}

// Counters exposes the shared counter state, for displays that want to
// read without incrementing.
func (c *Context) Counters() *interact.Counters { return &c.counters }

// Init looks up the fixed element set and attaches the demo's listeners.
// It returns the wiring context (owner of the shared counter) and the
// warnings for any elements that were missing.
func Init(doc *surface.Document, s *sched.Scheduler, opts Options) (*Context, []Warning) {
	opts.fill()
	wctx := &Context{}
	var warns []Warning

	bind := func(binding, selector string, attach func(el *surface.Element)) {
		el, ok := doc.Find(selector)
		if !ok {
			w := Warning{Binding: binding, Selector: selector}
			warns = append(warns, w)
			opts.Log.Warn("binding skipped", zap.String("binding", binding), zap.String("selector", selector))
			return
		}
		attach(el)
	}

	setOut := func(selector, text string) {
		if out, ok := doc.Find(selector); ok {
			out.SetText(text)
		}
	}

	bind("add", "#add-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			sum := interact.Add(fieldText(doc, "#add-a"), fieldText(doc, "#add-b"))
			text := "sum: " + formatNumber(sum)
			setOut("#add-out", text)
			opts.Observer(model.EventKindClick, ev.Target, text)
		})
	})

	bind("greet", "#greet-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			text := interact.Greet(fieldText(doc, "#greet-name"))
			setOut("#greet-out", text)
			opts.Observer(model.EventKindClick, ev.Target, text)
		})
	})

	bind("increment local", "#local-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			text := fmt.Sprintf("localCounter is now: %d", interact.IncrementLocal())
			setOut("#local-out", text)
			opts.Observer(model.EventKindClick, ev.Target, text)
		})
	})

	bind("increment global", "#global-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			text := fmt.Sprintf("globalCounter is now: %d", wctx.counters.IncrementGlobal())
			setOut("#counter-out", text)
			opts.Observer(model.EventKindClick, ev.Target, text)
		})
	})

	bind("card flip", "#flip-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			on := interact.ToggleClass(doc, "#flip-card", opts.Classes.Flip)
			opts.Observer(model.EventKindClick, ev.Target, fmt.Sprintf("%s=%t", opts.Classes.Flip, on))
		})
	})

	bind("spinner", "#spin-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			on := interact.ToggleClass(doc, "#spin-box", opts.Classes.Spin)
			opts.Observer(model.EventKindClick, ev.Target, fmt.Sprintf("%s=%t", opts.Classes.Spin, on))
		})
	})

	bind("pulse", "#pulse-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			if _, ok := interact.AnimateOnce(doc, s, "#pulse-box", opts.Classes.Pulse, opts.PulseDur); ok {
				// Mirror the scheduled removal so the session log shows
				// when the animation ended, not just when it started.
				s.SetTimeout(func() {
					opts.Observer(model.EventKindTimer, "pulse-box", opts.Classes.Pulse+" removed")
				}, opts.PulseDur)
			}
			opts.Observer(model.EventKindClick, ev.Target, "")
		})
	})

	bind("modal open", "#modal-open-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			interact.OpenModal(doc, "#demo-modal")
			opts.Observer(model.EventKindClick, ev.Target, "modal opened")
		})
	})

	bind("modal close", "#modal-close-btn", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			interact.CloseModal(doc, "#demo-modal")
			opts.Observer(model.EventKindClick, ev.Target, "modal closed")
		})
	})

	// Clicking the backdrop (the container itself, not its content box)
	// closes the modal.
	bind("modal backdrop", "#demo-modal", func(el *surface.Element) {
		el.On("click", func(ev surface.Event) {
			if ev.Target != el.ID() {
				return
			}
			interact.CloseModal(doc, "#demo-modal")
			opts.Observer(model.EventKindClick, ev.Target, "modal closed (backdrop)")
		})
	})

	// Escape closes the modal regardless of focus. Closing an already
	// closed modal is harmless, but only a real close is observed.
	doc.OnKey("esc", func(surface.Event) {
		el, ok := doc.Find("#demo-modal")
		wasOpen := ok && el.HasClass("open")
		if interact.CloseModal(doc, "#demo-modal") && wasOpen {
			opts.Observer(model.EventKindKey, "esc", "modal closed")
		}
	})

	opts.Log.Info("wiring complete", zap.Int("warnings", len(warns)))
	return wctx, warns
}

// fieldText reads an input element's current text, empty when the element
// is missing (the helpers' own coercion handles empty input).
func fieldText(doc *surface.Document, selector string) string {
	el, ok := doc.Find(selector)
	if !ok {
		return ""
	}
	return el.Text()
}

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
