package wire

import "uiplay/internal/surface"

// NewDemoDocument builds the fixed element set the wiring expects: the
// in-memory equivalent of the demo page's markup. Button text doubles as
// the label a renderer shows.
func NewDemoDocument() *surface.Document {
	doc := surface.NewDocument()

	input := func(id, text string) { doc.CreateElement("input", id).SetText(text) }
	button := func(id, label string) { doc.CreateElement("button", id).SetText(label) }
	output := func(id string) { doc.CreateElement("output", id) }

	input("add-a", "2")
	input("add-b", "3")
	button("add-btn", "Add numbers")
	output("add-out")

	input("greet-name", "")
	button("greet-btn", "Greet")
	output("greet-out")

	button("local-btn", "Increment local")
	output("local-out")
	button("global-btn", "Increment global")
	counter := doc.CreateElement("output", "counter-out")
	counter.SetText("globalCounter is now: 0")

	doc.CreateElement("div", "flip-card").SetText("What renders this page?")
	button("flip-btn", "Flip card")

	doc.CreateElement("div", "spin-box")
	button("spin-btn", "Toggle spinner")

	doc.CreateElement("div", "pulse-box").SetText("pulse target")
	button("pulse-btn", "Pulse once")

	modal := doc.CreateElement("div", "demo-modal")
	modal.SetAttr("aria-hidden", "true")
	doc.CreateElement("div", "modal-box").SetText("A modal. Click the backdrop or press esc to close it.")
	button("modal-open-btn", "Open modal")
	button("modal-close-btn", "Close modal")

	return doc
}
