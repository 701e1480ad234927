package gomidi

import (
	"errors"
	"fmt"

	"github.com/vsariola/xylophone/board"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	RTMIDIContext struct {
		driver             *rtmididrv.Driver
		broker             *board.Broker
		currentIn          drivers.In
		stop               func()
		inputDevices       []RTMIDIDevice
		devicesInitialized bool
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		in      drivers.In
	}
)

// NewContext opens the driver. Note-on messages of the open input are sent
// to broker.ToGUI.
func NewContext(broker *board.Broker) *RTMIDIContext {
	m := RTMIDIContext{broker: broker}
	// there's not much we can do if this fails, so just use m.driver = nil to
	// indicate no driver available
	m.driver, _ = rtmididrv.New()
	return &m
}

func (m *RTMIDIContext) Inputs(yield func(board.MIDIInputDevice) bool) {
	if m.devicesInitialized {
		m.yieldCachedInputDevices(yield)
	} else {
		m.initInputDevices(yield)
	}
}

func (m *RTMIDIContext) yieldCachedInputDevices(yield func(board.MIDIInputDevice) bool) {
	for _, device := range m.inputDevices {
		if !yield(device) {
			break
		}
	}
}

func (m *RTMIDIContext) initInputDevices(yield func(board.MIDIInputDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		return
	}
	m.inputDevices = m.inputDevices[:0]
	for _, in := range ins {
		m.inputDevices = append(m.inputDevices, RTMIDIDevice{context: m, in: in})
	}
	m.devicesInitialized = true
	m.yieldCachedInputDevices(yield)
}

func (m *RTMIDIContext) Support() board.MIDISupport {
	if m.driver == nil {
		return board.MIDISupportNoDriver
	}
	return board.MIDISupported
}

func (m *RTMIDIContext) Close() {
	if m.driver == nil {
		return
	}
	m.closeCurrent()
	m.driver.Close()
}

func (m *RTMIDIContext) closeCurrent() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
	if m.currentIn != nil && m.currentIn.IsOpen() {
		m.currentIn.Close()
	}
	m.currentIn = nil
}

// HandleMessage runs on the driver's goroutine. If the GUI is not keeping
// up, the message is dropped.
func (m *RTMIDIContext) HandleMessage(msg midi.Message, timestampms int32) {
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) || velocity == 0 {
		return
	}
	note, ok := board.NoteFromMIDI(key)
	if !ok {
		return
	}
	board.TrySend(m.broker.ToGUI, board.NoteEvent{Note: note, Source: "midi"})
}

// Open an input device while closing the currently open if necessary.
func (d RTMIDIDevice) Open() error {
	if d.context.currentIn == d.in {
		return nil
	}
	if d.context.driver == nil {
		return errors.New("no driver available")
	}
	d.context.closeCurrent()
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, d.context.HandleMessage)
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	d.context.currentIn = d.in
	d.context.stop = stop
	return nil
}

func (d RTMIDIDevice) Close() error {
	if d.context.currentIn != d.in {
		return d.in.Close()
	}
	d.context.closeCurrent()
	return nil
}

func (d RTMIDIDevice) IsOpen() bool {
	return d.in.IsOpen()
}

func (d RTMIDIDevice) String() string {
	return d.in.String()
}
