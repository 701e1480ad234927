package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

var backgroundColor = white
var barTextColor = white
var barTextSize = unit.Sp(45)
var barCornerRadius = unit.Dp(10)
var barSpacing = unit.Dp(10)

func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Bg = backgroundColor
	th.Palette.Fg = black
	return th
}
