package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/xylophone"
	"github.com/vsariola/xylophone/board"
	"github.com/vsariola/xylophone/sounds"
	"go.uber.org/zap"
)

func TestPlayerCurrent(t *testing.T) {
	ctx := &fakeContext{}
	p := board.NewPlayer(xylophone.NewSampleBank(sounds.FS, 44100), ctx, zap.NewNop())
	_, ok := p.Current()
	assert.False(t, ok)
	require.NoError(t, p.Play("G"))
	n, ok := p.Current()
	assert.True(t, ok)
	assert.Equal(t, xylophone.Note("G"), n)
	p.Close()
	_, ok = p.Current()
	assert.False(t, ok)
	assert.True(t, ctx.voices[0].closed)
	p.Close() // closing twice is fine
}

func TestPlayerMissingSample(t *testing.T) {
	ctx := &fakeContext{}
	p := board.NewPlayer(xylophone.NewSampleBank(sounds.FS, 44100), ctx, zap.NewNop())
	err := p.Play("H")
	assert.ErrorIs(t, err, xylophone.ErrSampleNotFound)
	assert.Empty(t, ctx.voices)
}

func TestPlayerCurrentAfterVoiceEnds(t *testing.T) {
	ctx := &fakeContext{}
	p := board.NewPlayer(xylophone.NewSampleBank(sounds.FS, 44100), ctx, zap.NewNop())
	require.NoError(t, p.Play("E"))
	ctx.voices[0].playing = false // the sample played to its end
	_, ok := p.Current()
	assert.False(t, ok)
	p.Close()
	assert.True(t, ctx.voices[0].closed)
}
