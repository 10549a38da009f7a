//go:build ebiten

package audio

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Loop plays the background drone forever and honors mute requests.
type Loop struct {
	player *audio.Player
	volume float64
}

// NewLoop starts the background loop at the given volume.
func NewLoop(volume float64) (*Loop, error) {
	ctx := audio.NewContext(SampleRate)
	pcm := Drone(4)
	src := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("audio: new player: %w", err)
	}
	player.SetVolume(volume)
	player.Play()
	return &Loop{player: player, volume: volume}, nil
}

// SetMuted silences or restores the loop.
func (l *Loop) SetMuted(muted bool) {
	if muted {
		l.player.SetVolume(0)
		return
	}
	l.player.SetVolume(l.volume)
}

// Close stops playback.
func (l *Loop) Close() error { return l.player.Close() }
