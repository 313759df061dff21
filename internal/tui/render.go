package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justyntemme/chrometabs/internal/tabs"
)

var (
	stripStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9aa0a6")).
			Background(lipgloss.Color("#202124"))
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bdc1c6")).
			Background(lipgloss.Color("#292a2d"))
	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1f3f4")).
			Background(lipgloss.Color("#35363a")).
			Bold(true)
	draggedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#202124")).
			Background(lipgloss.Color("#8ab4f8")).
			Bold(true)
	justAddedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1f3f4")).
				Background(lipgloss.Color("#35363a")).
				Bold(true).
				Underline(true)
	justDraggedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e8f0fe")).
				Background(lipgloss.Color("#303846"))
	newTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8ab4f8")).
			Background(lipgloss.Color("#202124")).
			Bold(true)
	ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#35363a"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5f6368"))
)

type cellStyle int

const (
	styleStrip cellStyle = iota
	styleTab
	styleCurrent
	styleDragged
	styleJustAdded
	styleJustDragged
	styleNewTab
)

var cellStyles = map[cellStyle]lipgloss.Style{
	styleStrip:       stripStyle,
	styleTab:         tabStyle,
	styleCurrent:     currentStyle,
	styleDragged:     draggedStyle,
	styleJustAdded:   justAddedStyle,
	styleJustDragged: justDraggedStyle,
	styleNewTab:      newTabStyle,
}

type cell struct {
	r     rune
	style cellStyle
}

func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}
	plan := m.bar.Plan()

	var sb strings.Builder
	sb.WriteString(renderCells(stripCells(plan, m.width)))
	sb.WriteByte('\n')
	sb.WriteString(ruleStyle.Render(strings.Repeat("─", m.width)))

	title := ""
	if t, ok := m.bar.Get(m.bar.Current()); ok {
		title = t.Title
	}
	sb.WriteByte('\n')
	sb.WriteString(" " + title)

	if m.showHelp {
		sb.WriteByte('\n')
		sb.WriteString(helpStyle.Render(" drag tabs with the mouse • ctrl+t new • ctrl+w close • ←/→ switch • shift+←/→ move • ? help • q quit"))
	}
	return sb.String()
}

// stripCells lays the plan out on one terminal row of the given width.
// Tabs paint in stacking order so the current and dragged tabs sit on top.
func stripCells(plan tabs.Plan, width int) []cell {
	row := make([]cell, width)
	for i := range row {
		row[i] = cell{r: ' ', style: styleStrip}
	}

	for _, i := range plan.PaintOrder() {
		slot := plan.Slots[i]
		x, n := slotCells(plan, slot)
		style := styleFor(slot.Flags)
		for j, r := range []rune(tabLabel(slot, n)) {
			if c := x + j; c >= 0 && c < width {
				row[c] = cell{r: r, style: style}
			}
		}
	}

	x := toCells(float64(len(plan.Slots)*plan.EffectiveWidth + tabs.OverlapDistance))
	for j, r := range []rune(" + ") {
		if c := x + j; c >= 0 && c < width {
			row[c] = cell{r: r, style: styleNewTab}
		}
	}
	return row
}

// renderCells joins runs of equally styled cells into styled strings
func renderCells(row []cell) string {
	var sb strings.Builder
	for start := 0; start < len(row); {
		end := start
		var run strings.Builder
		for end < len(row) && row[end].style == row[start].style {
			run.WriteRune(row[end].r)
			end++
		}
		sb.WriteString(cellStyles[row[start].style].Render(run.String()))
		start = end
	}
	return sb.String()
}

// slotCells returns the first cell and cell count of a slot. Tabs overlap by
// their slanted edges in pixels; in cells each tab owns its effective width.
func slotCells(plan tabs.Plan, slot tabs.Slot) (x, n int) {
	return toCells(slot.X()), toCells(float64(plan.EffectiveWidth))
}

// tabLabel renders the text of a tab n cells wide: " title  × ".
// Narrow tabs drop the close mark on inactive tabs, then the title.
func tabLabel(slot tabs.Slot, n int) string {
	if n <= 0 {
		return ""
	}
	current := slot.Flags.Has(tabs.FlagCurrent)
	showClose := n >= 4 && (current || !slot.Flags.Has(tabs.FlagSmall))
	showTitle := !slot.Flags.Has(tabs.FlagSmaller)

	label := make([]rune, n)
	for i := range label {
		label[i] = ' '
	}
	label[0] = '▏'

	if showTitle {
		avail := n - 2
		if showClose {
			avail = n - 4
		}
		title := []rune(slot.Title)
		if len(title) > avail && avail > 0 {
			title = append(title[:avail-1], '…')
		}
		for i, r := range title {
			if i >= avail {
				break
			}
			label[1+i] = r
		}
	} else if !showClose && n >= 3 {
		label[n/2] = '•'
	}
	if showClose {
		label[n-2] = '×'
	}
	return string(label)
}

// isCloseCell reports whether cell x is the close mark of slot.
func isCloseCell(plan tabs.Plan, slot tabs.Slot, x int) bool {
	start, n := slotCells(plan, slot)
	label := []rune(tabLabel(slot, n))
	i := x - start
	return i >= 0 && i < len(label) && label[i] == '×'
}

// hitTest returns the slot under cell x, preferring tabs painted on top, or -1.
func hitTest(plan tabs.Plan, x int) int {
	order := plan.PaintOrder()
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		start, n := slotCells(plan, plan.Slots[i])
		if x >= start && x < start+n {
			return i
		}
	}
	return -1
}

func styleFor(flags tabs.Flag) cellStyle {
	switch {
	case flags.Has(tabs.FlagCurrentlyDragged):
		return styleDragged
	case flags.Has(tabs.FlagJustAdded):
		return styleJustAdded
	case flags.Has(tabs.FlagCurrent):
		return styleCurrent
	case flags.Has(tabs.FlagJustDragged):
		return styleJustDragged
	}
	return styleTab
}
