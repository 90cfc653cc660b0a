package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardLogger(t *testing.T) {
	log := Discard()
	require.NotNil(t, log)

	// All levels are safe to call and go nowhere.
	log.Debugf("debug %d", 1)
	log.Infof("info")
	log.Warnf("warn %s", "x")
	log.Errorf("error")

	assert.Empty(t, log.LogPath())
	require.NoError(t, log.Close())
	require.NoError(t, log.Close(), "close is idempotent")
}

func TestSessionIDSharedAcrossLoggers(t *testing.T) {
	a := Discard()
	b := Discard()

	assert.NotEmpty(t, a.SessionID())
	assert.Equal(t, a.SessionID(), b.SessionID(), "one session ID per process")
}

func TestFormatLogEntry(t *testing.T) {
	log := Discard()
	log.component = "browser"

	entry := log.formatLogEntry("INFO", "hello")
	assert.Contains(t, entry, "[browser]")
	assert.Contains(t, entry, "[INFO]")
	assert.Contains(t, entry, "hello")
}
