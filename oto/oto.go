package oto

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
	"github.com/vsariola/xylophone"
)

type (
	Context struct {
		context    *oto.Context
		sampleRate int
		volume     float64
	}

	Voice struct {
		player *oto.Player
	}

	// sampleReader adapts a beep streamer to the io.Reader oto pulls from,
	// producing interleaved stereo float32 little-endian frames.
	sampleReader struct {
		streamer beep.Streamer
		frames   [][2]float64
	}
)

const otoBufferSize = 20 * time.Millisecond

// NewContext opens the audio device. oto allows only one context per
// process.
func NewContext(sampleRate int, volume float64) (*Context, error) {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   otoBufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{context: context, sampleRate: sampleRate, volume: volume}, nil
}

func (c *Context) SampleRate() int {
	return c.sampleRate
}

// NewVoice creates a paused voice reading the sample from the beginning.
func (c *Context) NewVoice(sample *xylophone.Sample) (xylophone.Voice, error) {
	if err := c.context.Err(); err != nil {
		return nil, fmt.Errorf("oto context failed: %w", err)
	}
	if sample.Format.SampleRate.N(time.Second) != c.sampleRate {
		return nil, fmt.Errorf("sample %q is %v Hz, context is %v Hz", sample.Name, sample.Format.SampleRate, c.sampleRate)
	}
	player := c.context.NewPlayer(&sampleReader{streamer: sample.Streamer()})
	player.SetVolume(c.volume)
	return &Voice{player: player}, nil
}

// Close suspends the device; oto keeps the context alive for the rest of the
// process.
func (c *Context) Close() error {
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

func (v *Voice) Play() {
	v.player.Play()
}

func (v *Voice) IsPlaying() bool {
	return v.player.IsPlaying()
}

// Close stops the voice. The oto player has nothing else to release.
func (v *Voice) Close() error {
	v.player.Pause()
	if err := v.player.Err(); err != nil {
		return fmt.Errorf("oto player failed: %w", err)
	}
	return nil
}

func (r *sampleReader) Read(buf []byte) (int, error) {
	n := len(buf) / bytesPerFrame
	if n == 0 {
		return 0, nil
	}
	if cap(r.frames) < n {
		r.frames = make([][2]float64, n)
	}
	frames := r.frames[:n]
	got, ok := r.streamer.Stream(frames)
	FramesToFloat32LE(buf[:0], frames[:got])
	if !ok || got < n {
		return got * bytesPerFrame, io.EOF
	}
	return got * bytesPerFrame, nil
}
