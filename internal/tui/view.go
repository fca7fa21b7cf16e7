package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.showHelp {
		return m.placeCentered(renderModalBox(m.width, "Guide",
			renderMarkdown(m.helpMarkdown(), modalBodyWidth(m.width))+"\n\n"+
				styleMuted().Render("esc: close")))
	}
	if m.modalOpen() {
		return m.placeCentered(m.renderDemoModal())
	}

	title := lipgloss.NewStyle().Bold(true).Render("uiplay — interaction playground")

	sections := []string{
		title,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderButtons(), "   ", m.renderOutputs()),
		"",
		m.renderWidgets(),
	}
	if len(m.warns) > 0 {
		var lines []string
		for _, w := range m.warns {
			lines = append(lines, styleWarn().Render("! "+w.String()))
		}
		sections = append(sections, "", strings.Join(lines, "\n"))
	}
	sections = append(sections, "",
		styleMuted().Render("↑/↓ + enter or shortcut key: click   ?: guide   q: quit"))

	return strings.Join(sections, "\n")
}

func (m appModel) renderButtons() string {
	base := lipgloss.NewStyle().Padding(0, 1).Foreground(colorSurfaceFg).Background(colorControlBg)
	active := base.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)

	var rows []string
	for i, a := range actions {
		label := a.selector
		if el, ok := m.doc.Find(a.selector); ok {
			label = el.Text()
		}
		row := "[" + a.key + "] " + label
		st := base
		if i == m.selected {
			st = active
		}
		rows = append(rows, st.Render(row))
	}
	return strings.Join(rows, "\n")
}

func (m appModel) renderOutputs() string {
	label := styleMuted()
	var rows []string
	add := func(name, selector string) {
		text := ""
		if el, ok := m.doc.Find(selector); ok {
			text = el.Text()
		}
		if text == "" {
			text = "—"
		}
		rows = append(rows, label.Render(name+" ")+text)
	}
	add("add:    ", "#add-out")
	add("greet:  ", "#greet-out")
	add("local:  ", "#local-out")
	add("global: ", "#counter-out")

	inputs := label.Render("inputs: ") +
		"a=" + m.fieldText("#add-a") + " b=" + m.fieldText("#add-b") +
		" name=" + orDash(m.fieldText("#greet-name"))
	rows = append(rows, "", inputs)
	return strings.Join(rows, "\n")
}

func (m appModel) fieldText(selector string) string {
	if el, ok := m.doc.Find(selector); ok {
		return el.Text()
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// renderWidgets draws the class-driven visuals: the card, the spinner box
// and the pulse box. Class membership is the only input; this is the
// "stylesheet" side of the class contract.
func (m appModel) renderWidgets() string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(30)

	card, _ := m.doc.Find("#flip-card")
	cardBody := "(no card)"
	if card != nil {
		if card.HasClass(m.classes.Flip) {
			cardBody = "The surface document does."
			cardStyle = cardStyle.Foreground(colorSelectedFg).Background(colorSelectedBg)
		} else {
			cardBody = card.Text()
		}
	}

	spinBody := styleMuted().Render("· idle")
	if el, ok := m.doc.Find("#spin-box"); ok && el.HasClass(m.classes.Spin) {
		spinBody = m.spin.View() + " working"
	}

	pulseStyle := lipgloss.NewStyle().Padding(0, 1)
	pulseBody := "pulse target"
	if el, ok := m.doc.Find("#pulse-box"); ok {
		pulseBody = el.Text()
		if el.HasClass(m.classes.Pulse) {
			pulseStyle = pulseStyle.Background(colorPulseBg).Bold(true)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(cardBody),
		"  ",
		lipgloss.NewStyle().Padding(0, 1).Render(spinBody),
		"  ",
		pulseStyle.Render(pulseBody),
	)
}

func (m appModel) renderDemoModal() string {
	body := "(missing modal content)"
	if el, ok := m.doc.Find("#modal-box"); ok {
		body = el.Text()
	}
	hidden := ""
	if el, ok := m.doc.Find("#demo-modal"); ok {
		hidden = "aria-hidden=" + el.Attr("aria-hidden")
	}
	content := strings.Join([]string{
		body,
		"",
		styleMuted().Render(hidden),
		"",
		styleMuted().Render("enter/x: close   b: backdrop click   esc: close"),
	}, "\n")
	return renderModalBox(m.width, "Demo modal", content)
}

func (m appModel) placeCentered(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func modalBodyWidth(width int) int {
	w := width - 8
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModalBox draws a titled box on the surface background. No nested
// borders inside: some terminals show background artifacts when bordered
// components sit inside a modal with a background color.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Padding(0, 1).
		Render(title)

	body := lipgloss.NewStyle().
		Width(bodyW).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Padding(0, 1).
		Render(content)

	box := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Render(box)
}
