//go:build !cgo

package cmd

import (
	"github.com/vsariola/xylophone/board"
)

func NewMidiContext(broker *board.Broker) board.MIDIContext {
	// with no cgo, we cannot use MIDI, so return a null context
	return board.NullMIDIContext{}
}
