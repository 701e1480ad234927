package xylophone

type (
	// AudioContext creates voices for decoded samples. There is usually one
	// context per process, owning the audio device.
	AudioContext interface {
		NewVoice(sample *Sample) (Voice, error)
		SampleRate() int
		Close() error
	}

	// Voice is one playback session of a sample. Play starts it from the
	// current position; Close releases it and stops any sound.
	Voice interface {
		Play()
		IsPlaying() bool
		Close() error
	}
)
