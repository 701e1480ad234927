package gioui

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// BarStyle draws one xylophone bar: a rounded, colored button with its note
// as the title. The whole bar, title included, is drawn at Alpha opacity.
type BarStyle struct {
	Clickable    *widget.Clickable
	Title        string
	Color        color.NRGBA
	TextColor    color.NRGBA
	TextSize     unit.Sp
	CornerRadius unit.Dp
	Alpha        float32
	Theme        *material.Theme
}

func Bar(th *material.Theme, c *widget.Clickable, title string, bg color.NRGBA, alpha float32) BarStyle {
	return BarStyle{
		Clickable:    c,
		Title:        title,
		Color:        bg,
		TextColor:    barTextColor,
		TextSize:     barTextSize,
		CornerRadius: barCornerRadius,
		Alpha:        alpha,
		Theme:        th,
	}
}

// Layout fills the minimum constraints, which the caller sets to the bar
// size.
func (b BarStyle) Layout(gtx C) D {
	return b.Clickable.Layout(gtx, func(gtx C) D {
		size := gtx.Constraints.Min
		defer paint.PushOpacity(gtx.Ops, b.Alpha).Pop()
		defer clip.UniformRRect(image.Rectangle{Max: size}, gtx.Dp(b.CornerRadius)).Push(gtx.Ops).Pop()
		paint.Fill(gtx.Ops, b.Color)
		label := material.Label(b.Theme, b.TextSize, b.Title)
		label.Color = b.TextColor
		label.Alignment = text.Middle
		layout.Center.Layout(gtx, label.Layout)
		return D{Size: size}
	})
}

// barWidth returns the width in pixels of a bar taking fraction of the
// available width.
func barWidth(available int, fraction float32) int {
	w := int(float32(available)*fraction + 0.5)
	return max(min(w, available), 0)
}
