package gioui

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gioui.org/unit"
	"github.com/vsariola/xylophone/board"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type (
	Preferences struct {
		Window WindowPreferences
		Audio  AudioPreferences
		Fade   FadePreferences
		Log    LogPreferences
	}

	WindowPreferences struct {
		Title     string
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}

	AudioPreferences struct {
		SampleRate int `yaml:"samplerate"`
		Volume     float64
	}

	FadePreferences struct {
		Dim      float32
		Delay    time.Duration
		Duration time.Duration
	}

	LogPreferences struct {
		Level string
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

// PreferencesFile is the name of the user's preferences file, searched in
// the "xylophone" subdirectory of os.UserConfigDir.
const PreferencesFile = "preferences.yml"

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	if err := decodeStrict(defaultPreferencesYaml, &preferences); err != nil {
		panic(fmt.Errorf("failed to unmarshal default preferences: %w", err))
	}
	return preferences
}

// ReadPreferences returns the defaults overridden by the given file. If path
// is empty, the file in the user config dir is used if it exists. Any error
// comes with the defaults, so the caller can warn and carry on.
func ReadPreferences(path string) (Preferences, error) {
	preferences := loadDefaultPreferences()
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return preferences, nil
		}
		path = filepath.Join(configDir, "xylophone", PreferencesFile)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return preferences, nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return preferences, fmt.Errorf("cannot read preferences: %w", err)
	}
	custom := preferences
	if err := decodeStrict(b, &custom); err != nil {
		return preferences, fmt.Errorf("invalid preferences %s: %w", path, err)
	}
	if err := custom.Validate(); err != nil {
		return preferences, fmt.Errorf("invalid preferences %s: %w", path, err)
	}
	return custom, nil
}

func decodeStrict(b []byte, target any) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (p Preferences) Validate() error {
	switch {
	case p.Window.Width <= 0 || p.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", p.Window.Width, p.Window.Height)
	case p.Audio.SampleRate <= 0:
		return fmt.Errorf("sample rate must be positive, got %d", p.Audio.SampleRate)
	case p.Audio.Volume < 0 || p.Audio.Volume > 1:
		return fmt.Errorf("volume must be within [0, 1], got %v", p.Audio.Volume)
	case p.Fade.Dim < 0 || p.Fade.Dim > 1:
		return fmt.Errorf("fade dim must be within [0, 1], got %v", p.Fade.Dim)
	case p.Fade.Delay < 0 || p.Fade.Duration < 0:
		return errors.New("fade delay and duration cannot be negative")
	}
	if _, err := zapcore.ParseLevel(p.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

func (p Preferences) FadeTiming() board.FadeTiming {
	return board.FadeTiming{Dim: p.Fade.Dim, Delay: p.Fade.Delay, Duration: p.Fade.Duration}
}
