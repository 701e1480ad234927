package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/xylophone/logger"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	l, err := logger.New("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := logger.New("loud")
	assert.Error(t, err)
}
