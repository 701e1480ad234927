package main

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/xylophone/board"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type (
	midiContext struct {
		support board.MIDISupport
		inputs  []*midiInput
	}

	midiInput struct {
		name    string
		openErr error
		open    bool
	}
)

func (c *midiContext) Inputs(yield func(board.MIDIInputDevice) bool) {
	for _, in := range c.inputs {
		if !yield(in) {
			return
		}
	}
}
func (c *midiContext) Close()                     {}
func (c *midiContext) Support() board.MIDISupport { return c.support }

func (i *midiInput) Open() error {
	if i.openErr != nil {
		return i.openErr
	}
	i.open = true
	return nil
}

func (i *midiInput) Close() error {
	i.open = false
	return nil
}

func (i *midiInput) IsOpen() bool   { return i.open }
func (i *midiInput) String() string { return i.name }

func TestRootCommandFlags(t *testing.T) {
	c := newRootCommand()
	for _, name := range []string{"config", "samples", "midi-input", "log-level", "cpuprofile"} {
		assert.NotNil(t, c.Flags().Lookup(name), "flag %v", name)
	}
	require.NoError(t, c.ParseFlags([]string{"--log-level", "debug", "--samples", "/tmp/samples"}))
	assert.True(t, c.Flags().Changed("log-level"))
	assert.False(t, c.Flags().Changed("config"))
}

func TestRootCommandRejectsArguments(t *testing.T) {
	c := newRootCommand()
	assert.Error(t, c.Args(c, []string{"song.yml"}))
}

func TestConnectMIDIWithoutSupport(t *testing.T) {
	for _, support := range []board.MIDISupport{board.MIDISupportNotCompiled, board.MIDISupportNoDriver} {
		core, logs := observer.New(zapcore.WarnLevel)
		in := &midiInput{name: "KeyStep"}
		ok := connectMIDI(&midiContext{support: support, inputs: []*midiInput{in}}, "Key", zap.New(core))
		assert.False(t, ok)
		assert.False(t, in.open)
		assert.Equal(t, 1, logs.Len())
	}
	core, logs := observer.New(zapcore.WarnLevel)
	assert.False(t, connectMIDI(board.NullMIDIContext{}, "Key", zap.New(core)))
	assert.Contains(t, logs.All()[0].Message, "not compiled in")
}

func TestConnectMIDI(t *testing.T) {
	keystep := &midiInput{name: "KeyStep 32"}
	broken := &midiInput{name: "MiniLab", openErr: errors.New("busy")}
	c := &midiContext{support: board.MIDISupported, inputs: []*midiInput{broken, keystep}}
	assert.True(t, connectMIDI(c, "keystep", zap.NewNop()))
	assert.True(t, keystep.open)
	assert.False(t, connectMIDI(c, "Mini", zap.NewNop()))
	assert.False(t, connectMIDI(c, "Launchpad", zap.NewNop()))
}

func TestCloseOnSignal(t *testing.T) {
	broker := board.NewBroker()
	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGTERM
	closeOnSignal(signals, broker)
	select {
	case <-broker.CloseGUI:
	default:
		t.Fatal("an interrupt must ask the GUI to close")
	}

	close(signals)
	closeOnSignal(signals, broker)
	assert.Empty(t, broker.CloseGUI)
}

func TestCPUProfile(t *testing.T) {
	p, err := startCPUProfile("")
	require.NoError(t, err)
	p.stop()

	path := filepath.Join(t.TempDir(), "cpu.prof")
	p, err = startCPUProfile(path)
	require.NoError(t, err)
	p.stop()
	p.stop()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	_, err = startCPUProfile(filepath.Join(t.TempDir(), "missing", "cpu.prof"))
	assert.Error(t, err)
}
