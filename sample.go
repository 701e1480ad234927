package xylophone

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// SampleExt is the extension of the sample files. A note's sample is found
// by exact match of Note + SampleExt.
const SampleExt = ".wav"

// resampleQuality is passed to beep.Resample when a file's rate differs from
// the audio context's rate.
const resampleQuality = 4

var ErrSampleNotFound = errors.New("sample not found")

type (
	// Sample is a decoded sound, already converted to the bank's sample rate.
	Sample struct {
		Name   string
		Format beep.Format
		Buffer *beep.Buffer
	}

	// SampleBank resolves notes to samples stored in a file system, e.g. the
	// embedded sounds or a directory given on the command line. Decoded
	// samples are cached; missing files are looked up again on every call.
	SampleBank struct {
		fsys       fs.FS
		sampleRate beep.SampleRate

		mu    sync.Mutex
		cache map[Note]*Sample
	}
)

func NewSampleBank(fsys fs.FS, sampleRate int) *SampleBank {
	return &SampleBank{
		fsys:       fsys,
		sampleRate: beep.SampleRate(sampleRate),
		cache:      make(map[Note]*Sample),
	}
}

// FileName returns the file the sample of n is stored in.
func FileName(n Note) string {
	return string(n) + SampleExt
}

// Has reports whether the bank contains a file for n, without decoding it.
func (b *SampleBank) Has(n Note) bool {
	_, err := fs.Stat(b.fsys, FileName(n))
	return err == nil
}

// Load returns the decoded sample for n. The error wraps ErrSampleNotFound if
// there is no file for n.
func (b *SampleBank) Load(n Note) (*Sample, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.cache[n]; ok {
		return s, nil
	}
	name := FileName(n)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrSampleNotFound)
	}
	f, err := b.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", name, ErrSampleNotFound)
		}
		return nil, fmt.Errorf("cannot open sample %q: %w", name, err)
	}
	defer f.Close()
	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode sample %q: %w", name, err)
	}
	defer streamer.Close()
	var src beep.Streamer = streamer
	if format.SampleRate != b.sampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, b.sampleRate, streamer)
		format.SampleRate = b.sampleRate
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("cannot decode sample %q: %w", name, err)
	}
	s := &Sample{Name: string(n), Format: format, Buffer: buffer}
	b.cache[n] = s
	return s, nil
}

// Streamer returns a new streamer over the whole sample.
func (s *Sample) Streamer() beep.StreamSeeker {
	return s.Buffer.Streamer(0, s.Buffer.Len())
}

// Len returns the length of the sample in frames.
func (s *Sample) Len() int {
	return s.Buffer.Len()
}

func (s *Sample) Duration() time.Duration {
	return s.Format.SampleRate.D(s.Buffer.Len())
}
