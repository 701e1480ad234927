package board

import (
	"strings"

	"github.com/vsariola/xylophone"
)

type (
	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	MIDISupport int
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

// natural notes by pitch class, C = 0
var midiPitchClasses = [12]xylophone.Note{0: "C", 2: "D", 4: "E", 5: "F", 7: "G", 9: "A", 11: "B"}

// NoteFromMIDI maps a MIDI key number to the bar with the same letter name,
// in any octave. Sharps and flats have no bar.
func NoteFromMIDI(key uint8) (xylophone.Note, bool) {
	n := midiPitchClasses[key%12]
	return n, n != ""
}

// FindMIDIDeviceByPrefix returns the first input whose name starts with
// prefix, ignoring case.
func FindMIDIDeviceByPrefix(c MIDIContext, prefix string) (input MIDIInputDevice, ok bool) {
	prefix = strings.ToLower(prefix)
	for i := range c.Inputs {
		if strings.HasPrefix(strings.ToLower(i.String()), prefix) {
			return i, true
		}
	}
	return nil, false
}

// NullMIDIContext is a mockup MIDIContext if you don't want to create a real
// one.
type NullMIDIContext struct{}

func (m NullMIDIContext) Inputs(yield func(input MIDIInputDevice) bool) {}
func (m NullMIDIContext) Close()                                        {}
func (m NullMIDIContext) Support() MIDISupport                          { return MIDISupportNotCompiled }
