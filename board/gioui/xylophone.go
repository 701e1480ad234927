package gioui

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/vsariola/xylophone"
	"github.com/vsariola/xylophone/board"
	"go.uber.org/zap"
)

type (
	// Xylophone is the single screen of the application.
	Xylophone struct {
		Theme *material.Theme

		board       *board.Board
		broker      *board.Broker
		clickables  []widget.Clickable
		keyFilters  []event.Filter
		insets      app.Insets
		preferences Preferences
		log         *zap.Logger
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewXylophone(b *board.Board, broker *board.Broker, preferences Preferences, log *zap.Logger) *Xylophone {
	x := &Xylophone{
		Theme:       NewTheme(),
		board:       b,
		broker:      broker,
		clickables:  make([]widget.Clickable, b.Len()),
		preferences: preferences,
		log:         log,
	}
	for _, bar := range b.Bars() {
		x.keyFilters = append(x.keyFilters, key.Filter{Name: key.Name(bar.Note)})
	}
	return x
}

// Main runs the window until it is closed. Note events from the broker are
// handled here, so the board is only ever touched by this goroutine.
func (x *Xylophone) Main() {
	defer close(x.broker.FinishedGUI)
	var ops op.Ops
	w := x.newWindow()
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	for {
		select {
		case e := <-x.broker.ToGUI:
			x.handleNoteEvent(e)
			w.Invalidate()
		case <-x.broker.CloseGUI:
			w.Perform(system.ActionClose)
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				if e.Err != nil {
					x.log.Error("window destroyed", zap.Error(e.Err))
				}
				acks <- struct{}{}
				return
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				x.insets = e.Insets
				x.Layout(gtx)
				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}

// handleNoteEvent presses the bar of a note received from the broker.
func (x *Xylophone) handleNoteEvent(e board.NoteEvent) bool {
	if !x.board.PressNote(e.Note) {
		x.log.Debug("no bar for note", zap.Stringer("note", e.Note), zap.String("source", e.Source))
		return false
	}
	return true
}

func (x *Xylophone) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Title(x.preferences.Window.Title), app.Size(x.preferences.WindowSize()))
	if x.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func (x *Xylophone) Layout(gtx C) D {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, x.Theme.Palette.Bg)
	x.handleInput(gtx)
	dims := layout.Inset{
		Top:    x.insets.Top,
		Bottom: x.insets.Bottom,
		Left:   x.insets.Left,
		Right:  x.insets.Right,
	}.Layout(gtx, x.layoutBars)
	if at, ok := x.board.NextFrame(); ok {
		gtx.Execute(op.InvalidateCmd{At: at})
	}
	return dims
}

func (x *Xylophone) handleInput(gtx C) {
	for i := range x.clickables {
		for x.clickables[i].Clicked(gtx) {
			x.board.Press(i)
		}
	}
	for {
		ev, ok := gtx.Event(x.keyFilters...)
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			if n, ok := noteForKey(e.Name); ok {
				x.board.PressNote(n)
			}
		}
	}
}

func (x *Xylophone) layoutBars(gtx C) D {
	children := make([]layout.FlexChild, 0, 2*x.board.Len())
	for i := 0; i < x.board.Len(); i++ {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Height: barSpacing}.Layout))
		}
		children = append(children, layout.Flexed(1, x.barWidget(i)))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (x *Xylophone) barWidget(i int) layout.Widget {
	return func(gtx C) D {
		bar := x.board.Bar(i)
		size := image.Pt(barWidth(gtx.Constraints.Max.X, bar.Width), gtx.Constraints.Max.Y)
		return layout.Center.Layout(gtx, func(gtx C) D {
			gtx.Constraints = layout.Exact(size)
			return Bar(x.Theme, &x.clickables[i], bar.Note.String(), bar.Color, x.board.Alpha(i)).Layout(gtx)
		})
	}
}

// noteForKey maps the keys A to G to the bars with the same label.
func noteForKey(name key.Name) (xylophone.Note, bool) {
	n := xylophone.Note(name)
	return n, xylophone.NoteIndex(n) >= 0
}
