package board

import (
	"image/color"
	"time"

	"github.com/vsariola/xylophone"
)

type (
	// Board is the model of the xylophone: the bars in display order and the
	// player they trigger. A Board is owned by the GUI goroutine; input from
	// other goroutines goes through the Broker.
	Board struct {
		bars   []Bar
		timing FadeTiming
		player *Player

		// Now returns the current time; tests replace it.
		Now func() time.Time
	}

	Bar struct {
		Note  xylophone.Note
		Color color.NRGBA
		// Width is the bar width as a fraction of the board width.
		Width float32

		fade fade
	}
)

const (
	firstBarWidth = 0.97
	barWidthStep  = 0.03
)

// WidthFraction returns the width of the i-th bar relative to the board.
// Each bar is a bit shorter than the one above it.
func WidthFraction(i int) float32 {
	return firstBarWidth - barWidthStep*float32(i)
}

// NewBoard builds one bar per note, in the given order.
func NewBoard(notes []xylophone.Note, player *Player, timing FadeTiming) *Board {
	b := &Board{
		bars:   make([]Bar, len(notes)),
		timing: timing,
		player: player,
		Now:    time.Now,
	}
	for i, n := range notes {
		b.bars[i] = Bar{Note: n, Color: xylophone.Color(n), Width: WidthFraction(i)}
	}
	return b
}

func (b *Board) Len() int { return len(b.bars) }

// Bar returns a copy of the i-th bar.
func (b *Board) Bar(i int) Bar { return b.bars[i] }

// Bars returns copies of all bars in display order.
func (b *Board) Bars() []Bar {
	ret := make([]Bar, len(b.bars))
	copy(ret, b.bars)
	return ret
}

// Index returns the index of the bar labelled n, or -1.
func (b *Board) Index(n xylophone.Note) int {
	for i := range b.bars {
		if b.bars[i].Note == n {
			return i
		}
	}
	return -1
}

// Press dims the i-th bar, starting its recovery timer, and plays its note.
// Playback failures are logged by the player and otherwise ignored. Indices
// out of range are ignored.
func (b *Board) Press(i int) {
	if i < 0 || i >= len(b.bars) {
		return
	}
	bar := &b.bars[i]
	bar.fade.restart(b.Now())
	if b.player != nil {
		b.player.Play(bar.Note)
	}
}

// PressNote presses the bar labelled n, if there is one.
func (b *Board) PressNote(n xylophone.Note) bool {
	i := b.Index(n)
	if i < 0 {
		return false
	}
	b.Press(i)
	return true
}

// Alpha returns the current opacity of the i-th bar.
func (b *Board) Alpha(i int) float32 {
	return b.bars[i].fade.alpha(b.timing, b.Now())
}

// NextFrame returns when the board needs to be redrawn for its animations.
// ok is false if all bars are at rest.
func (b *Board) NextFrame() (at time.Time, ok bool) {
	now := b.Now()
	for i := range b.bars {
		t, animating := b.bars[i].fade.next(b.timing, now)
		if !animating {
			continue
		}
		if !ok || t.Before(at) {
			at, ok = t, true
		}
	}
	return at, ok
}

// Close stops any sound still playing.
func (b *Board) Close() {
	if b.player != nil {
		b.player.Close()
	}
}
