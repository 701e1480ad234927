package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"gioui.org/app"
	"github.com/spf13/cobra"
	"github.com/vsariola/xylophone"
	"github.com/vsariola/xylophone/board"
	"github.com/vsariola/xylophone/board/gioui"
	"github.com/vsariola/xylophone/cmd"
	"github.com/vsariola/xylophone/logger"
	"github.com/vsariola/xylophone/oto"
	"github.com/vsariola/xylophone/sounds"
	"github.com/vsariola/xylophone/version"
	"go.uber.org/zap"
)

type options struct {
	config     string
	samples    string
	midiInput  string
	logLevel   string
	cpuprofile string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options
	c := &cobra.Command{
		Use:          "xylophone",
		Short:        "A seven bar virtual xylophone",
		Long:         "Play a seven bar xylophone with the mouse, touch, the keys A-G or a MIDI keyboard.",
		Version:      version.VersionOrHash,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			if !c.Flags().Changed("log-level") {
				opts.logLevel = ""
			}
			return run(opts)
		},
	}
	f := c.Flags()
	f.StringVar(&opts.config, "config", "", "read preferences from `file` instead of the user config directory")
	f.StringVar(&opts.samples, "samples", "", "load the <note>.wav samples from `dir` instead of the bundled ones")
	f.StringVar(&opts.midiInput, "midi-input", "", "connect MIDI input to matching device name prefix")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error (overrides preferences)")
	f.StringVar(&opts.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	return c
}

func run(opts options) error {
	preferences, prefErr := gioui.ReadPreferences(opts.config)
	level := preferences.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log, err := logger.New(level)
	if err != nil {
		return err
	}
	if prefErr != nil {
		log.Warn("using default preferences", zap.Error(prefErr))
	}
	profile, err := startCPUProfile(opts.cpuprofile)
	if err != nil {
		return err
	}
	defer profile.stop() // app.Main never returns, so this only runs on errors
	audioContext, err := oto.NewContext(preferences.Audio.SampleRate, preferences.Audio.Volume)
	if err != nil {
		return err
	}
	var samples fs.FS = sounds.FS
	if opts.samples != "" {
		samples = os.DirFS(opts.samples)
	}
	bank := xylophone.NewSampleBank(samples, audioContext.SampleRate())
	for _, n := range xylophone.Notes {
		if !bank.Has(n) {
			log.Warn("missing sample", zap.String("file", xylophone.FileName(n)))
		}
	}
	broker := board.NewBroker()
	midiContext := cmd.NewMidiContext(broker)
	if opts.midiInput != "" {
		connectMIDI(midiContext, opts.midiInput, log)
	}
	player := board.NewPlayer(bank, audioContext, log.Named("player"))
	b := board.NewBoard(xylophone.Notes, player, preferences.FadeTiming())
	ui := gioui.NewXylophone(b, broker, preferences, log.Named("gui"))
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go closeOnSignal(signals, broker)
	go ui.Main()
	go func() {
		<-broker.FinishedGUI
		signal.Stop(signals)
		if note, ok := player.Current(); ok {
			log.Debug("stopping note", zap.Stringer("note", note))
		}
		b.Close()
		midiContext.Close()
		if err := audioContext.Close(); err != nil {
			log.Error("closing audio failed", zap.Error(err))
		}
		profile.stop()
		log.Sync()
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// closeOnSignal asks the GUI to close the window when the process is
// interrupted, so shutdown goes through the same path as closing the window.
func closeOnSignal(signals <-chan os.Signal, broker *board.Broker) {
	if _, ok := <-signals; ok {
		board.TrySend(broker.CloseGUI, struct{}{})
	}
}

// connectMIDI opens the first MIDI input whose name starts with prefix.
func connectMIDI(c board.MIDIContext, prefix string, log *zap.Logger) bool {
	switch c.Support() {
	case board.MIDISupportNotCompiled:
		log.Warn("MIDI input requested, but MIDI support is not compiled in (build with cgo)")
		return false
	case board.MIDISupportNoDriver:
		log.Warn("MIDI input requested, but no MIDI driver is available")
		return false
	}
	input, ok := board.FindMIDIDeviceByPrefix(c, prefix)
	if !ok {
		log.Warn("no MIDI input device found", zap.String("prefix", prefix))
		return false
	}
	if err := input.Open(); err != nil {
		log.Error("failed to open MIDI input", zap.Stringer("input", input), zap.Error(err))
		return false
	}
	log.Info("MIDI input connected", zap.Stringer("input", input))
	return true
}

type cpuProfile struct {
	file *os.File
}

// startCPUProfile starts profiling to path; an empty path profiles nothing.
func startCPUProfile(path string) (*cpuProfile, error) {
	p := &cpuProfile{}
	if path == "" {
		return p, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.file = f
	return p, nil
}

// stop ends the profile. It can be called more than once.
func (p *cpuProfile) stop() {
	if p.file == nil {
		return
	}
	pprof.StopCPUProfile()
	p.file.Close()
	p.file = nil
}
