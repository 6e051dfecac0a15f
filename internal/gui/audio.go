package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/paroliere/internal/config"
	"github.com/appengine-ltd/paroliere/internal/game"
)

// soundBank plays game cues through the raylib audio device.
type soundBank struct {
	sounds map[game.Cue]rl.Sound
}

func soundFile(c game.Cue) string {
	return c.String() + ".wav"
}

// loadSoundBank loads one sound per cue. The audio device must be open.
func loadSoundBank(cfg *config.Config, log *zap.Logger) (*soundBank, error) {
	bank := &soundBank{sounds: make(map[game.Cue]rl.Sound, len(game.Cues))}
	for _, cue := range game.Cues {
		path := cfg.SoundPath(soundFile(cue))
		log.Info("loading sound", zap.String("path", path))

		if _, err := os.Stat(path); err != nil {
			bank.Unload()
			return nil, fmt.Errorf("load sound %s: %w", path, err)
		}
		sound := rl.LoadSound(path)
		if sound.FrameCount == 0 {
			bank.Unload()
			return nil, fmt.Errorf("load sound %s: no frames decoded", path)
		}
		bank.sounds[cue] = sound
	}
	return bank, nil
}

func (b *soundBank) Play(c game.Cue) {
	if s, ok := b.sounds[c]; ok {
		rl.PlaySound(s)
	}
}

func (b *soundBank) Unload() {
	for cue, s := range b.sounds {
		rl.UnloadSound(s)
		delete(b.sounds, cue)
	}
}
