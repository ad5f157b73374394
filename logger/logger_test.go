package logger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, debug := range []bool{false, true} {
		log, err := New(debug)
		require.NoError(t, err)
		require.NotNil(t, log)
		assert.Equal(t, debug, log.Core().Enabled(zap.DebugLevel))
	}
}

func TestRunIDIsStableUUID(t *testing.T) {
	_, err := uuid.Parse(RunID())
	require.NoError(t, err)
	assert.Equal(t, RunID(), RunID())
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
