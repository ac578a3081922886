// Package audio plays the game's music and sound effects. All sounds are
// synthesized PCM so the binary ships without audio assets.
package audio

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/asli-sahin/snake/pkg/game"
)

const sampleRate = 44100

// synthTone renders a sine tone as 16-bit stereo PCM with a linear
// fade-out so clips don't click when they end.
func synthTone(freq float64, durSec float64, volume float64) []byte {
	n := int(float64(sampleRate) * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1.0 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * volume * env
		s := int16(v * math.MaxInt16)
		buf[i*4] = byte(s)
		buf[i*4+1] = byte(s >> 8)
		buf[i*4+2] = byte(s)
		buf[i*4+3] = byte(s >> 8)
	}
	return buf
}

// synthMelody concatenates tones into one looping PCM buffer.
func synthMelody(freqs []float64, noteSec float64, volume float64) []byte {
	var buf bytes.Buffer
	for _, f := range freqs {
		buf.Write(synthTone(f, noteSec, volume))
	}
	return buf.Bytes()
}

// Jukebox owns the audio context and one player per sound. Music players
// loop; effect players rewind and replay on demand.
type Jukebox struct {
	ctx   *audio.Context
	muted bool

	foodSFX     *audio.Player
	pauseSFX    *audio.Player
	gameOverSFX *audio.Player

	titleMusic *audio.Player
	gameMusic  *audio.Player
	current    *audio.Player
}

// NewJukebox builds the players. A nil return with error only happens
// when the platform has no audio device at all.
func NewJukebox(muted bool) (*Jukebox, error) {
	ctx := audio.NewContext(sampleRate)

	j := &Jukebox{ctx: ctx, muted: muted}

	j.foodSFX = ctx.NewPlayerFromBytes(synthTone(880, 0.08, 0.4))
	j.pauseSFX = ctx.NewPlayerFromBytes(synthTone(440, 0.12, 0.3))
	j.gameOverSFX = ctx.NewPlayerFromBytes(synthMelody([]float64{392, 330, 262}, 0.15, 0.4))

	var err error
	title := synthMelody([]float64{262, 330, 392, 330}, 0.3, 0.2)
	j.titleMusic, err = ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(title), int64(len(title))))
	if err != nil {
		return nil, err
	}

	gameplay := synthMelody([]float64{330, 392, 440, 392, 330, 294}, 0.25, 0.2)
	j.gameMusic, err = ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(gameplay), int64(len(gameplay))))
	if err != nil {
		return nil, err
	}

	return j, nil
}

func (j *Jukebox) playEffect(p *audio.Player) {
	if j == nil || j.muted || p == nil {
		return
	}
	p.Rewind()
	p.Play()
}

// HandleEvent plays the effect matching a game event.
func (j *Jukebox) HandleEvent(ev game.Event) {
	if j == nil || j.muted {
		return
	}
	switch ev.Kind {
	case game.EventFoodConsumed:
		j.playEffect(j.foodSFX)
	case game.EventGameOver:
		j.playEffect(j.gameOverSFX)
	case game.EventStateChanged:
		if ev.To == game.StatePaused {
			j.playEffect(j.pauseSFX)
		}
	}
}

// PlayStateMusic switches the looping track to match the game state.
// Paused and game-over keep whatever was playing stopped.
func (j *Jukebox) PlayStateMusic(s game.State) {
	if j == nil || j.muted {
		return
	}
	var want *audio.Player
	switch s {
	case game.StateMenu:
		want = j.titleMusic
	case game.StatePlaying:
		want = j.gameMusic
	}
	if want == j.current {
		return
	}
	if j.current != nil {
		j.current.Pause()
	}
	j.current = want
	if want != nil {
		want.Rewind()
		want.Play()
	}
}
