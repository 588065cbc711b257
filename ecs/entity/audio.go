package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/prefabs"
)

// AudioLoader resolves a sound file to a player. A nil player means silence.
type AudioLoader func(file string) *audio.Player

func buildAudioComponent(audioSpecs []prefabs.AudioSpec, load AudioLoader) *component.Audio {
	n := len(audioSpecs)
	a := &component.Audio{
		Names:   make([]component.Sound, 0, n),
		Players: make([]*audio.Player, 0, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, 0, n),
	}

	for _, clip := range audioSpecs {
		var player *audio.Player
		if load != nil {
			player = load(clip.File)
		}
		a.Names = append(a.Names, component.Sound(clip.Name))
		a.Players = append(a.Players, player)
		a.Volume = append(a.Volume, clip.Volume)
		a.Play = append(a.Play, false)
	}
	return a
}

// NewAudio creates the sound bank entity. It outlives level resets, so the
// caller keeps it in a world of its own.
func NewAudio(w *ecs.World, audioSpecs []prefabs.AudioSpec, load AudioLoader) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), buildAudioComponent(audioSpecs, load)); err != nil {
		return 0, fmt.Errorf("audio: add audio: %w", err)
	}
	return e, nil
}
