//go:build ebiten

package app

import (
	"log"
	"math"

	"snake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// sound plays short generated beeps for eating and dying.
type sound struct {
	muted bool
	eat   *audio.Player
	die   *audio.Player
}

func newSound(muted bool) *sound {
	ctx := audio.NewContext(sampleRate)
	return &sound{
		muted: muted,
		eat:   newBeepPlayer(ctx, 880, 0.08),
		die:   newBeepPlayer(ctx, 220, 0.4),
	}
}

// Toggle flips muting.
func (s *sound) Toggle() { s.muted = !s.muted }

// Play reacts to a tick outcome.
func (s *sound) Play(out snake.Outcome) {
	if s.muted {
		return
	}
	switch out {
	case snake.Ate:
		replay(s.eat)
	case snake.Died:
		replay(s.die)
	}
}

func replay(p *audio.Player) {
	if err := p.Rewind(); err != nil {
		log.Printf("sound: rewind: %v", err)
		return
	}
	p.Play()
}

// newBeepPlayer synthesizes a decaying sine tone as 16-bit stereo PCM.
func newBeepPlayer(ctx *audio.Context, freq, durSec float64) *audio.Player {
	n := int(sampleRate * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-4 * t)
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return ctx.NewPlayerFromBytes(buf)
}
