//go:build cgo

package cmd

import (
	"github.com/vsariola/xylophone/board"
	"github.com/vsariola/xylophone/board/gomidi"
)

func NewMidiContext(broker *board.Broker) board.MIDIContext {
	return gomidi.NewContext(broker)
}
