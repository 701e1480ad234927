package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/xylophone"
	"github.com/vsariola/xylophone/board"
)

type (
	fakeMIDIContext []string
	fakeMIDIInput   string
)

func (c fakeMIDIContext) Inputs(yield func(board.MIDIInputDevice) bool) {
	for _, name := range c {
		if !yield(fakeMIDIInput(name)) {
			return
		}
	}
}
func (c fakeMIDIContext) Close()                     {}
func (c fakeMIDIContext) Support() board.MIDISupport { return board.MIDISupported }

func (i fakeMIDIInput) Open() error    { return nil }
func (i fakeMIDIInput) Close() error   { return nil }
func (i fakeMIDIInput) IsOpen() bool   { return false }
func (i fakeMIDIInput) String() string { return string(i) }

func TestNoteFromMIDI(t *testing.T) {
	cases := map[uint8]xylophone.Note{
		60: "C", 62: "D", 64: "E", 65: "F", 67: "G", 69: "A", 71: "B",
		0: "C", 21: "A", 127: "G",
	}
	for key, want := range cases {
		got, ok := board.NoteFromMIDI(key)
		assert.True(t, ok, "key %d", key)
		assert.Equal(t, want, got, "key %d", key)
	}
	for _, key := range []uint8{61, 63, 66, 68, 70} {
		_, ok := board.NoteFromMIDI(key)
		assert.False(t, ok, "key %d is not a natural note", key)
	}
}

func TestFindMIDIDeviceByPrefix(t *testing.T) {
	ctx := fakeMIDIContext{"Midi Through Port-0", "Arturia KeyStep 32", "Arturia MiniLab"}
	in, ok := board.FindMIDIDeviceByPrefix(ctx, "arturia")
	assert.True(t, ok)
	assert.Equal(t, "Arturia KeyStep 32", in.String())
	_, ok = board.FindMIDIDeviceByPrefix(ctx, "Korg")
	assert.False(t, ok)
	_, ok = board.FindMIDIDeviceByPrefix(board.NullMIDIContext{}, "")
	assert.False(t, ok)
}

func TestTrySend(t *testing.T) {
	b := board.NewBroker()
	for i := 0; i < cap(b.ToGUI); i++ {
		assert.True(t, board.TrySend(b.ToGUI, board.NoteEvent{Note: "A"}))
	}
	assert.False(t, board.TrySend(b.ToGUI, board.NoteEvent{Note: "B"}), "full channel must not block")
	assert.True(t, board.TrySend(b.CloseGUI, struct{}{}))
	assert.False(t, board.TrySend(b.CloseGUI, struct{}{}))
}
