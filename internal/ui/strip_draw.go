package ui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/chrometabs/internal/tabs"
)

// Chrome tab drawing

// tabContent says which parts of a tab are visible at its current size
type tabContent struct {
	favicon  bool
	title    bool
	close    bool
	centered bool // Single item centered in the tab
}

// contentFor decides tab content from the size flags. Narrow tabs drop the
// close button on inactive tabs first, then titles; mini tabs show only the
// favicon, or only the close button on the current tab.
func contentFor(flags tabs.Flag, hasFavicon bool) tabContent {
	current := flags.Has(tabs.FlagCurrent)
	if flags.Has(tabs.FlagMini) {
		if current {
			return tabContent{close: true, centered: true}
		}
		return tabContent{favicon: hasFavicon, centered: true}
	}
	c := tabContent{
		favicon: hasFavicon,
		title:   !flags.Has(tabs.FlagSmaller),
		close:   current || !flags.Has(tabs.FlagSmall),
	}
	c.centered = !c.title
	return c
}

// tabBackground picks the fill for a tab; ok is false for an unhighlighted tab.
func tabBackground(flags tabs.Flag, hovered bool) (color.NRGBA, bool) {
	switch {
	case flags.Has(tabs.FlagCurrentlyDragged):
		return colTabDragged, true
	case flags.Has(tabs.FlagCurrent):
		return colTabActive, true
	case flags.Has(tabs.FlagJustDragged):
		return colJustDragged, true
	case hovered:
		return colTabHover, true
	}
	return color.NRGBA{}, false
}

// drawTab draws slot with its left edge at strip pixel x, lowered by rise
// pixels while it appears.
func (s *TabStrip) drawTab(gtx layout.Context, th *material.Theme, slot tabs.Slot, x float32, rise, height int) {
	xPx := int(x + 0.5)
	defer op.Offset(image.Pt(xPx, 0)).Push(gtx.Ops).Pop()

	w := gtx.Dp(unit.Dp(slot.Width))
	edge := gtx.Dp(tabs.AdjacentSpace)
	top := gtx.Dp(tabTopPadding)
	bodyH := height - top
	d := s.dragFor(slot.Handle)

	// Tab body sits below the top padding
	body := op.Offset(image.Pt(0, top+rise)).Push(gtx.Ops)

	if bg, ok := tabBackground(slot.Flags, d.Hovered()); ok {
		if slot.Flags.Has(tabs.FlagCurrentlyDragged) {
			shadow := op.Offset(image.Pt(0, -gtx.Dp(1))).Push(gtx.Ops)
			paint.FillShape(gtx.Ops, colShadow, tabShape(gtx.Ops, w, bodyH+gtx.Dp(1), edge, gtx.Dp(tabCornerRadius)))
			shadow.Pop()
		}
		paint.FillShape(gtx.Ops, bg, tabShape(gtx.Ops, w, bodyH, edge, gtx.Dp(tabCornerRadius)))
	} else {
		// Divider on the right edge; a highlighted neighbor painted later covers it
		pad := bodyH / 4
		divider := op.Offset(image.Pt(w-edge, pad)).Push(gtx.Ops)
		paint.FillShape(gtx.Ops, colDivider, clip.Rect{Max: image.Pt(max(1, gtx.Dp(1)), bodyH-2*pad)}.Op())
		divider.Pop()
	}

	// Hit area and content cover the part between the slanted edges
	inner := op.Offset(image.Pt(edge, 0)).Push(gtx.Ops)
	innerW := max(0, w-2*edge)
	area := clip.Rect{Max: image.Pt(innerW, bodyH)}.Push(gtx.Ops)
	d.Add(gtx.Ops, float32(xPx+edge))

	cgtx := gtx
	cgtx.Constraints = layout.Exact(image.Pt(innerW, bodyH))
	s.layoutTabContent(cgtx, th, slot)

	area.Pop()
	inner.Pop()
	body.Pop()
}

func (s *TabStrip) layoutTabContent(gtx layout.Context, th *material.Theme, slot tabs.Slot) layout.Dimensions {
	content := contentFor(slot.Flags, slot.Favicon != "")

	favicon := func(gtx layout.Context) layout.Dimensions {
		return s.layoutFavicon(gtx, slot.Favicon)
	}
	closeBtn := func(gtx layout.Context) layout.Dimensions {
		return s.layoutClose(gtx, slot.Handle)
	}

	if content.centered && !content.title {
		var children []layout.FlexChild
		if content.favicon {
			children = append(children, layout.Rigid(favicon))
		}
		if content.favicon && content.close {
			children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout))
		}
		if content.close {
			children = append(children, layout.Rigid(closeBtn))
		}
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
		})
	}

	return layout.Inset{Left: tabContentPadLeft, Right: tabContentPadRight}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		var children []layout.FlexChild
		if content.favicon {
			children = append(children,
				layout.Rigid(favicon),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout))
		}
		children = append(children, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			title := slot.Title
			if title == "" {
				title = tabs.DefaultTitle
			}
			lbl := material.Label(th, unit.Sp(12), title)
			lbl.MaxLines = 1
			lbl.Color = colTitle
			if slot.Flags.Has(tabs.FlagCurrent) {
				lbl.Color = colTitleActive
			}
			return lbl.Layout(gtx)
		}))
		if content.close {
			children = append(children, layout.Rigid(closeBtn))
		}
		gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (s *TabStrip) layoutFavicon(gtx layout.Context, path string) layout.Dimensions {
	size := gtx.Dp(faviconSize)
	gtx.Constraints = layout.Exact(image.Pt(size, size))
	if s.favicons == nil || path == "" {
		return layout.Dimensions{Size: image.Pt(size, size)}
	}
	img, ok := s.favicons.Get(path)
	if !ok {
		s.favicons.RequestLoad(path)
		return layout.Dimensions{Size: image.Pt(size, size)}
	}
	return widget.Image{Src: img, Fit: widget.Contain, Position: layout.Center}.Layout(gtx)
}

func (s *TabStrip) layoutClose(gtx layout.Context, h tabs.Handle) layout.Dimensions {
	size := gtx.Dp(closeButtonSize)
	btn := s.closeFor(h)
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if btn.Hovered() {
			paint.FillShape(gtx.Ops, colCloseHoverBg, clip.Ellipse{Max: image.Pt(size, size)}.Op(gtx.Ops))
		}
		center := float32(size) / 2
		arm := float32(size) / 4

		var p clip.Path
		p.Begin(gtx.Ops)
		p.MoveTo(f32.Pt(center-arm, center-arm))
		p.LineTo(f32.Pt(center+arm, center+arm))
		p.MoveTo(f32.Pt(center+arm, center-arm))
		p.LineTo(f32.Pt(center-arm, center+arm))
		paint.FillShape(gtx.Ops, colClose, clip.Stroke{Path: p.End(), Width: float32(gtx.Dp(1)) * 1.5}.Op())

		return layout.Dimensions{Size: image.Pt(size, size)}
	})
}

func (s *TabStrip) drawNewTabButton(gtx layout.Context, x, height int) {
	top := gtx.Dp(tabTopPadding)
	size := gtx.Dp(28)
	y := top + (height-top-size)/2
	defer op.Offset(image.Pt(x+gtx.Dp(4), y)).Push(gtx.Ops).Pop()

	bgtx := gtx
	bgtx.Constraints = layout.Exact(image.Pt(size, size))
	s.newTab.Layout(bgtx, func(gtx layout.Context) layout.Dimensions {
		if s.newTab.Hovered() {
			paint.FillShape(gtx.Ops, colCloseHoverBg, clip.Ellipse{Max: image.Pt(size, size)}.Op(gtx.Ops))
		}
		center := float32(size) / 2
		arm := float32(size) / 4

		var p clip.Path
		p.Begin(gtx.Ops)
		p.MoveTo(f32.Pt(center-arm, center))
		p.LineTo(f32.Pt(center+arm, center))
		p.MoveTo(f32.Pt(center, center-arm))
		p.LineTo(f32.Pt(center, center+arm))
		paint.FillShape(gtx.Ops, colNewTab, clip.Stroke{Path: p.End(), Width: float32(gtx.Dp(2))}.Op())

		return layout.Dimensions{Size: image.Pt(size, size)}
	})
}

// tabShape outlines a chrome tab of width w and height h: rounded top corners
// inset by edge, and bottom feet that flare out into the overlap.
func tabShape(ops *op.Ops, w, h, edge, radius int) clip.Op {
	a := float32(edge)
	b := float32(w - edge)
	r := float32(radius)
	foot := min(r, a)
	hf := float32(h)

	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(a-foot, hf))
	p.QuadTo(f32.Pt(a, hf), f32.Pt(a, hf-foot))
	p.LineTo(f32.Pt(a, r))
	p.QuadTo(f32.Pt(a, 0), f32.Pt(a+r, 0))
	p.LineTo(f32.Pt(b-r, 0))
	p.QuadTo(f32.Pt(b, 0), f32.Pt(b, r))
	p.LineTo(f32.Pt(b, hf-foot))
	p.QuadTo(f32.Pt(b, hf), f32.Pt(b+foot, hf))
	p.Close()
	return clip.Outline{Path: p.End()}.Op()
}

// LayoutPage fills the area below the strip with the current tab's page,
// which shows only the tab title.
func (s *TabStrip) LayoutPage(gtx layout.Context, th *material.Theme) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, colTabActive, clip.Rect{Max: size}.Op())

	title := ""
	if t, ok := s.bar.Get(s.bar.Current()); ok {
		title = t.Title
		if title == "" {
			title = tabs.DefaultTitle
		}
	}
	if title != "" {
		lbl := material.H5(th, title)
		lbl.Color = colTitleActive
		layout.Center.Layout(gtx, lbl.Layout)
	}
	return layout.Dimensions{Size: size}
}
