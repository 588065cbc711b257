package component

import "github.com/hajimehoshi/ebiten/v2/audio"

type Sound string

const (
	SoundJump  Sound = "jump"
	SoundDeath Sound = "death"
	SoundWin   Sound = "win"
)

// Audio holds one player per named sound. A nil player is a missing asset and
// plays nothing.
type Audio struct {
	Names   []Sound
	Players []*audio.Player
	Volume  []float64
	Play    []bool
}

// Request flags the named sound for the next AudioSystem pass.
func (a *Audio) Request(name Sound) bool {
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
