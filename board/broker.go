package board

import "github.com/vsariola/xylophone"

type (
	// Broker carries note events from input goroutines (e.g. a MIDI driver)
	// to the GUI goroutine, which owns the Board. Presses must not be
	// handled elsewhere.
	Broker struct {
		ToGUI chan NoteEvent

		// CloseGUI has a capacity of 1, so a close request never blocks.
		// FinishedGUI is closed when the GUI loop has exited.
		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	NoteEvent struct {
		Note   xylophone.Note
		Source string
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToGUI:       make(chan NoteEvent, 64),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}
