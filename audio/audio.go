// Package audio synthesizes all sound effects at startup and plays them
// through a single speaker mixer. No sound files are shipped; every effect
// is generated from oscillators and noise.
package audio

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const defaultSampleRate = beep.SampleRate(44100)

// Manager owns the speaker and builds effect streamers on demand. The zero
// value is unusable; call NewManager then Initialize.
type Manager struct {
	sampleRate  beep.SampleRate
	rng         *rand.Rand
	initialized bool
	muted       bool

	// Ctrl handles for effects that loop until stopped, keyed by name.
	loops map[string]*beep.Ctrl
}

// NewManager returns a silent manager. Initialize opens the speaker; until
// then Play and Stop are no-ops, so a failed audio device degrades to a
// silent game rather than an error.
func NewManager(muted bool) *Manager {
	return &Manager{
		sampleRate: defaultSampleRate,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		muted:      muted,
		loops:      make(map[string]*beep.Ctrl),
	}
}

// Initialize opens the audio device. Safe to skip when muted.
func (m *Manager) Initialize() error {
	if m.muted {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	m.initialized = true
	return nil
}

// Play starts the named effect. Unknown names are logged once at debug level
// and ignored, so the game loop never has to care whether audio came up.
func (m *Manager) Play(name string) {
	if !m.initialized || m.muted {
		return
	}

	s := m.effect(name)
	if s == nil {
		log.Debug("unknown sound effect", "name", name)
		return
	}

	if m.isLoop(name) {
		ctrl := &beep.Ctrl{Streamer: s}
		speaker.Lock()
		if old, ok := m.loops[name]; ok {
			old.Streamer = nil
		}
		m.loops[name] = ctrl
		speaker.Unlock()
		speaker.Play(ctrl)
		return
	}

	speaker.Play(s)
}

// Stop silences a looping effect. One-shot effects run to completion and
// ignore Stop.
func (m *Manager) Stop(name string) {
	if !m.initialized {
		return
	}

	speaker.Lock()
	if ctrl, ok := m.loops[name]; ok {
		ctrl.Streamer = nil
		delete(m.loops, name)
	}
	speaker.Unlock()
}

// Close releases the audio device.
func (m *Manager) Close() {
	if m.initialized {
		speaker.Close()
		m.initialized = false
	}
}

func (m *Manager) isLoop(name string) bool {
	return name == "mystery_ship"
}

func (m *Manager) effect(name string) beep.Streamer {
	switch name {
	case "player_shoot":
		return m.playerShoot()
	case "invader_shoot":
		return m.invaderShoot()
	case "player_explosion":
		return m.playerExplosion()
	case "invader_explosion":
		return m.invaderExplosion()
	case "mystery_ship":
		return m.mysteryShip()
	case "mystery_ship_hit":
		return m.mysteryShipHit()
	case "game_over":
		return m.gameOver()
	case "invader_movement0":
		return m.invaderMovement(0)
	case "invader_movement1":
		return m.invaderMovement(1)
	case "invader_movement2":
		return m.invaderMovement(2)
	case "invader_movement3":
		return m.invaderMovement(3)
	}
	return nil
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
