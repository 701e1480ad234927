package xylophone

import "image/color"

// Note is the label of one xylophone bar. The label doubles as the base name
// of the bar's sample file.
type Note string

// Notes lists the bars of the xylophone, from top to bottom.
var Notes = []Note{"A", "B", "C", "D", "E", "F", "G"}

var (
	red    = color.NRGBA{R: 255, G: 59, B: 48, A: 255}
	orange = color.NRGBA{R: 255, G: 149, B: 0, A: 255}
	yellow = color.NRGBA{R: 255, G: 204, B: 0, A: 255}
	green  = color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	indigo = color.NRGBA{R: 88, G: 86, B: 214, A: 255}
	blue   = color.NRGBA{R: 0, G: 122, B: 255, A: 255}
	purple = color.NRGBA{R: 175, G: 82, B: 222, A: 255}

	// FallbackColor is returned by Color for labels outside Notes.
	FallbackColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

var noteColors = map[Note]color.NRGBA{
	"A": red,
	"B": orange,
	"C": yellow,
	"D": green,
	"E": indigo,
	"F": blue,
	"G": purple,
}

// Color returns the display color of the bar labelled n. It never fails:
// unknown labels get FallbackColor.
func Color(n Note) color.NRGBA {
	if c, ok := noteColors[n]; ok {
		return c
	}
	return FallbackColor
}

// NoteIndex returns the position of n in Notes, or -1.
func NoteIndex(n Note) int {
	for i, m := range Notes {
		if m == n {
			return i
		}
	}
	return -1
}

func (n Note) String() string {
	return string(n)
}
