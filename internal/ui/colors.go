package ui

import "image/color"

// Theme colors - these are variables so they can be modified for dark mode
var (
	colStrip        = color.NRGBA{R: 222, G: 225, B: 230, A: 255}
	colTabActive    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colTabHover     = color.NRGBA{R: 240, G: 242, B: 244, A: 255}
	colTabDragged   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colJustDragged  = color.NRGBA{R: 232, G: 240, B: 254, A: 255}
	colTitle        = color.NRGBA{R: 69, G: 71, B: 74, A: 255}
	colTitleActive  = color.NRGBA{R: 32, G: 33, B: 36, A: 255}
	colDivider      = color.NRGBA{R: 168, G: 172, B: 176, A: 255}
	colClose        = color.NRGBA{R: 95, G: 99, B: 104, A: 255}
	colCloseHoverBg = color.NRGBA{R: 0, G: 0, B: 0, A: 25}
	colNewTab       = color.NRGBA{R: 95, G: 99, B: 104, A: 255}
	colShadow       = color.NRGBA{R: 0, G: 0, B: 0, A: 40}
)

var (
	lightColors = themeColors{
		strip:        colStrip,
		tabActive:    colTabActive,
		tabHover:     colTabHover,
		tabDragged:   colTabDragged,
		justDragged:  colJustDragged,
		title:        colTitle,
		titleActive:  colTitleActive,
		divider:      colDivider,
		close:        colClose,
		closeHoverBg: colCloseHoverBg,
		newTab:       colNewTab,
		shadow:       colShadow,
	}
	darkColors = themeColors{
		strip:        color.NRGBA{R: 32, G: 33, B: 36, A: 255},
		tabActive:    color.NRGBA{R: 53, G: 54, B: 58, A: 255},
		tabHover:     color.NRGBA{R: 41, G: 42, B: 45, A: 255},
		tabDragged:   color.NRGBA{R: 60, G: 61, B: 65, A: 255},
		justDragged:  color.NRGBA{R: 48, G: 56, B: 70, A: 255},
		title:        color.NRGBA{R: 154, G: 160, B: 166, A: 255},
		titleActive:  color.NRGBA{R: 241, G: 243, B: 244, A: 255},
		divider:      color.NRGBA{R: 95, G: 99, B: 104, A: 255},
		close:        color.NRGBA{R: 189, G: 193, B: 198, A: 255},
		closeHoverBg: color.NRGBA{R: 255, G: 255, B: 255, A: 30},
		newTab:       color.NRGBA{R: 189, G: 193, B: 198, A: 255},
		shadow:       color.NRGBA{R: 0, G: 0, B: 0, A: 90},
	}
)

type themeColors struct {
	strip, tabActive, tabHover, tabDragged, justDragged color.NRGBA
	title, titleActive, divider, close, closeHoverBg    color.NRGBA
	newTab, shadow                                      color.NRGBA
}

// applyTheme swaps the package colors between the light and dark palettes
func applyTheme(dark bool) {
	c := lightColors
	if dark {
		c = darkColors
	}
	colStrip = c.strip
	colTabActive = c.tabActive
	colTabHover = c.tabHover
	colTabDragged = c.tabDragged
	colJustDragged = c.justDragged
	colTitle = c.title
	colTitleActive = c.titleActive
	colDivider = c.divider
	colClose = c.close
	colCloseHoverBg = c.closeHoverBg
	colNewTab = c.newTab
	colShadow = c.shadow
}
