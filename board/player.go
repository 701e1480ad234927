package board

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vsariola/xylophone"
	"go.uber.org/zap"
)

type (
	// SampleLoader resolves a note to its decoded sample. The error wraps
	// xylophone.ErrSampleNotFound if the note has no sample.
	SampleLoader interface {
		Load(n xylophone.Note) (*xylophone.Sample, error)
	}

	// Player holds the single active voice. Starting a note stops and
	// releases the previous voice, so two samples never overlap.
	Player struct {
		samples SampleLoader
		context xylophone.AudioContext
		log     *zap.Logger

		mu    sync.Mutex
		voice xylophone.Voice
		note  xylophone.Note
	}
)

func NewPlayer(samples SampleLoader, context xylophone.AudioContext, log *zap.Logger) *Player {
	return &Player{samples: samples, context: context, log: log}
}

// Play starts the sample of n. On failure nothing changes: a voice already
// playing keeps playing. Failures are logged here; the error is returned for
// callers that want to know.
func (p *Player) Play(n xylophone.Note) error {
	sample, err := p.samples.Load(n)
	if err != nil {
		if errors.Is(err, xylophone.ErrSampleNotFound) {
			p.log.Warn("Звук не найден для кнопки "+string(n), zap.Error(err))
		} else {
			p.log.Error("cannot load sample", zap.Stringer("note", n), zap.Error(err))
		}
		return err
	}
	voice, err := p.context.NewVoice(sample)
	if err != nil {
		p.log.Error("cannot create voice", zap.Stringer("note", n), zap.Error(err))
		return fmt.Errorf("cannot create voice for %v: %w", n, err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.releaseLocked()
	p.voice = voice
	p.note = n
	voice.Play()
	p.log.Debug("playing", zap.Stringer("note", n), zap.Duration("length", sample.Duration()))
	return nil
}

// Current returns the note that is still sounding, if any. A voice that has
// played to its end no longer counts.
func (p *Player) Current() (xylophone.Note, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.voice == nil || !p.voice.IsPlaying() {
		return "", false
	}
	return p.note, true
}

// Close stops and releases the current voice.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.releaseLocked()
}

func (p *Player) releaseLocked() {
	if p.voice == nil {
		return
	}
	if err := p.voice.Close(); err != nil {
		p.log.Error("cannot close voice", zap.Stringer("note", p.note), zap.Error(err))
	}
	p.voice = nil
	p.note = ""
}
