package chime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneLength(t *testing.T) {
	streamer, err := Tone()
	require.NoError(t, err)

	samples := 0
	buffer := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buffer)
		samples += n
		if !ok {
			break
		}
	}

	want := beeps*sampleRate.N(toneLength) + (beeps-1)*sampleRate.N(gapLength)
	assert.Equal(t, want, samples)
}

func TestPlayBeforeInitIsSilent(t *testing.T) {
	var player Player
	assert.False(t, player.Ready())
	assert.NoError(t, player.Play())
}
