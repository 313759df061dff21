// Package tui renders a tabs.Bar in a terminal with Bubble Tea. Terminal
// cells map to bar pixels at CellWidth pixels per cell, so the same layout
// and drag arithmetic drive both renderers.
package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justyntemme/chrometabs/internal/debug"
	"github.com/justyntemme/chrometabs/internal/tabs"
)

const (
	// CellWidth is how many bar pixels one terminal cell stands for
	CellWidth = 8

	// newTabCells is the width of the "+" button after the tabs
	newTabCells = 3

	frameInterval = 16 * time.Millisecond
)

// frameMsg steps a settling drop by one frame; deadlineMsg fires when a
// just-added highlight is due to expire.
type (
	frameMsg    time.Time
	deadlineMsg time.Time
)

// Model implements the Bubble Tea program for the tab strip.
type Model struct {
	bar    *tabs.Bar
	width  int
	height int

	// NewTab supplies options for tabs added with ctrl+t or the "+" button
	NewTab func() []tabs.TabOption

	pressed    tabs.Handle // Tab under the held mouse button
	pressX     int         // Cell where the press happened
	dragging   bool
	dragOrigin float64 // Dragged tab's x in pixels at drag start
	framing    bool    // A settle frame is scheduled
	waiting    bool    // A deadline tick is scheduled
	showHelp   bool
}

// NewModel constructs the model around an existing bar.
func NewModel(bar *tabs.Bar) *Model {
	return &Model{bar: bar, showHelp: true}
}

// Bar returns the bar the model renders
func (m *Model) Bar() *tabs.Bar {
	return m.bar
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.bar.Resize(max(0, m.width-newTabCells) * CellWidth)
		return m, m.scheduleFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.scheduleFrame()

	case frameMsg:
		m.framing = false
		// The previous View presented a settle step
		if settling(m.bar) {
			m.bar.FrameCompleted()
		}
		m.bar.Tick(time.Time(msg))
		return m, m.scheduleFrame()

	case deadlineMsg:
		m.waiting = false
		m.bar.Tick(time.Time(msg))
		return m, m.scheduleFrame()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "ctrl+t":
		m.addTab()
	case "ctrl+w":
		if cur := m.bar.Current(); cur != 0 {
			m.bar.Remove(cur)
		}
	case "right", "tab", "l":
		m.bar.Next()
	case "left", "shift+tab", "h":
		m.bar.Prev()
	case "shift+right", "L":
		m.moveCurrent(1)
	case "shift+left", "H":
		m.moveCurrent(-1)
	case "?":
		m.showHelp = !m.showHelp
	default:
		// Digits 1-9 select a tab by position
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if t, ok := m.bar.At(int(s[0] - '1')); ok {
				m.bar.SetCurrent(t.Handle)
			}
		}
	}
	return m, m.scheduleFrame()
}

func (m *Model) addTab() {
	var opts []tabs.TabOption
	if m.NewTab != nil {
		opts = m.NewTab()
	}
	m.bar.Add(opts...)
}

func (m *Model) moveCurrent(step int) {
	cur := m.bar.Current()
	i := m.bar.Index(cur)
	if i < 0 {
		return
	}
	dest := i + step
	if dest < 0 || dest >= m.bar.Len() {
		return
	}
	m.bar.Reorder(cur, dest)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != 0 {
			return
		}
		m.press(msg.X)

	case tea.MouseActionMotion:
		if m.pressed == 0 {
			return
		}
		dx := msg.X - m.pressX
		if !m.dragging {
			if dx == 0 {
				return
			}
			m.bar.DragStart(m.pressed)
			if m.bar.Dragged() != m.pressed {
				m.pressed = 0
				return
			}
			m.dragging = true
			m.dragOrigin = m.slotX(m.pressed)
			debug.Log(debug.UI_EVENT, "tui: drag start tab %d at %.0fpx", m.pressed, m.dragOrigin)
		}
		m.bar.DragMove(m.pressed, m.travel(dx))

	case tea.MouseActionRelease:
		if m.pressed != 0 && m.dragging {
			dx := m.travel(msg.X - m.pressX)
			m.bar.DragEnd(m.pressed, m.dragOrigin+dx)
			debug.Log(debug.UI_EVENT, "tui: drop tab %d at %.0fpx", m.pressed, m.dragOrigin+dx)
		}
		m.pressed = 0
		m.dragging = false
	}
}

// press handles a left click on the tab row at cell x.
func (m *Model) press(x int) {
	plan := m.bar.Plan()
	if x >= m.newTabCell(plan) && x < m.newTabCell(plan)+newTabCells {
		m.addTab()
		return
	}

	i := hitTest(plan, x)
	if i < 0 {
		return
	}
	slot := plan.Slots[i]
	if isCloseCell(plan, slot, x) {
		m.bar.Remove(slot.Handle)
		return
	}
	m.bar.PointerDown(slot.Handle)
	m.pressed = slot.Handle
	m.pressX = x
	m.dragging = false
}

// travel converts cell travel to pixels, keeping the dragged tab in the strip.
func (m *Model) travel(dxCells int) float64 {
	dx := float64(dxCells * CellWidth)
	g := m.bar.Geometry()
	lo := -m.dragOrigin
	hi := math.Max(lo, float64(m.bar.Width()-g.TabWidth)-m.dragOrigin)
	return math.Min(math.Max(dx, lo), hi)
}

func (m *Model) slotX(h tabs.Handle) float64 {
	i := m.bar.Index(h)
	if i < 0 {
		return 0
	}
	return m.bar.Plan().Slots[i].X()
}

func (m *Model) newTabCell(plan tabs.Plan) int {
	return toCells(float64(len(plan.Slots)*plan.EffectiveWidth + tabs.OverlapDistance))
}

// scheduleFrame keeps frames coming while a drop settles and wakes the model
// when a just-added highlight expires. The two timers are independent so a
// pending expiry never delays a settle step.
func (m *Model) scheduleFrame() tea.Cmd {
	var cmds []tea.Cmd
	if settling(m.bar) && !m.framing {
		m.framing = true
		cmds = append(cmds, tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) }))
	}
	if deadline := m.bar.NextDeadline(); !deadline.IsZero() && !m.waiting {
		m.waiting = true
		wait := max(frameInterval, time.Until(deadline))
		cmds = append(cmds, tea.Tick(wait, func(t time.Time) tea.Msg { return deadlineMsg(t) }))
	}
	return tea.Batch(cmds...)
}

func settling(bar *tabs.Bar) bool {
	switch bar.DragState() {
	case tabs.DragAtDropPoint, tabs.DragResetting:
		return true
	}
	return false
}

func toCells(px float64) int {
	return int(math.Round(px / CellWidth))
}
