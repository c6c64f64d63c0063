package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// oscillator is a square-wave generator with a linear frequency sweep and a
// linear fade-out envelope over its lifetime.
type oscillator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	duration  int // total samples
	pos       int
	phase     float64
	volume    float64
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.pos >= o.duration {
		return 0, false
	}

	n := 0
	for i := range samples {
		if o.pos >= o.duration {
			break
		}

		progress := float64(o.pos) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.sr)
		if o.phase >= 1 {
			o.phase -= 1
		}

		v := o.volume * (1 - progress)
		if o.phase < 0.5 {
			v = -v
		}

		samples[i][0] = v
		samples[i][1] = v
		o.pos++
		n++
	}
	return n, true
}

func (o *oscillator) Err() error { return nil }

// sineTone is a steady sine generator with attack/release ramps. A zero
// duration makes it stream forever, for use behind a beep.Ctrl.
type sineTone struct {
	sr       beep.SampleRate
	freq     float64
	duration int // total samples, 0 for endless
	ramp     int // attack/release samples
	pos      int
	phase    float64
	volume   float64
}

func (t *sineTone) Stream(samples [][2]float64) (int, bool) {
	if t.duration > 0 && t.pos >= t.duration {
		return 0, false
	}

	n := 0
	for i := range samples {
		if t.duration > 0 && t.pos >= t.duration {
			break
		}

		t.phase += t.freq / float64(t.sr)
		if t.phase >= 1 {
			t.phase -= 1
		}

		v := t.volume * math.Sin(2*math.Pi*t.phase)
		if t.ramp > 0 {
			if t.pos < t.ramp {
				v *= float64(t.pos) / float64(t.ramp)
			} else if t.duration > 0 && t.duration-t.pos < t.ramp {
				v *= float64(t.duration-t.pos) / float64(t.ramp)
			}
		}

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *sineTone) Err() error { return nil }

// warble is a sine carrier frequency-modulated by a slower sine, giving the
// wobbling descending tone of an incoming shot.
type warble struct {
	sr       beep.SampleRate
	carrier  float64
	modFreq  float64
	modDepth float64
	duration int
	pos      int
	phase    float64
	volume   float64
}

func (w *warble) Stream(samples [][2]float64) (int, bool) {
	if w.pos >= w.duration {
		return 0, false
	}

	n := 0
	for i := range samples {
		if w.pos >= w.duration {
			break
		}

		t := float64(w.pos) / float64(w.sr)
		freq := w.carrier + w.modDepth*math.Sin(2*math.Pi*w.modFreq*t)
		w.phase += freq / float64(w.sr)
		if w.phase >= 1 {
			w.phase -= 1
		}

		progress := float64(w.pos) / float64(w.duration)
		v := w.volume * (1 - progress) * math.Sin(2*math.Pi*w.phase)

		samples[i][0] = v
		samples[i][1] = v
		w.pos++
		n++
	}
	return n, true
}

func (w *warble) Err() error { return nil }

// noiseBurst is white noise low-passed by a single-pole filter, decaying
// exponentially. Used for explosions.
type noiseBurst struct {
	rng      *rand.Rand
	duration int
	pos      int
	last     float64
	cutoff   float64 // 0..1, lower is darker
	volume   float64
}

func (nb *noiseBurst) Stream(samples [][2]float64) (int, bool) {
	if nb.pos >= nb.duration {
		return 0, false
	}

	n := 0
	for i := range samples {
		if nb.pos >= nb.duration {
			break
		}

		raw := nb.rng.Float64()*2 - 1
		nb.last += nb.cutoff * (raw - nb.last)

		progress := float64(nb.pos) / float64(nb.duration)
		v := nb.volume * nb.last * math.Exp(-4*progress)

		samples[i][0] = v
		samples[i][1] = v
		nb.pos++
		n++
	}
	return n, true
}

func (nb *noiseBurst) Err() error { return nil }

func (m *Manager) samples(ms int) int {
	return m.sampleRate.N(msToDuration(ms))
}

// playerShoot is a sharp descending zap, 1000Hz down to 300Hz.
func (m *Manager) playerShoot() beep.Streamer {
	return &oscillator{
		sr:        m.sampleRate,
		startFreq: 1000,
		endFreq:   300,
		duration:  m.samples(120),
		volume:    0.25,
	}
}

// invaderShoot is a short wobbling tone distinct from the player's zap.
func (m *Manager) invaderShoot() beep.Streamer {
	return &warble{
		sr:       m.sampleRate,
		carrier:  420,
		modFreq:  30,
		modDepth: 120,
		duration: m.samples(150),
		volume:   0.2,
	}
}

// playerExplosion layers a dark noise burst over a low rumble.
func (m *Manager) playerExplosion() beep.Streamer {
	return mix(
		&noiseBurst{rng: m.rng, duration: m.samples(500), cutoff: 0.08, volume: 0.5},
		&oscillator{sr: m.sampleRate, startFreq: 120, endFreq: 40, duration: m.samples(500), volume: 0.25},
	)
}

// invaderExplosion is a brighter, shorter burst than the player's.
func (m *Manager) invaderExplosion() beep.Streamer {
	return mix(
		&noiseBurst{rng: m.rng, duration: m.samples(200), cutoff: 0.25, volume: 0.4},
		&oscillator{sr: m.sampleRate, startFreq: 500, endFreq: 80, duration: m.samples(200), volume: 0.15},
	)
}

// mysteryShip is the endless siren behind the saucer flyby. The caller wraps
// it in a beep.Ctrl so it can be stopped mid-flight.
func (m *Manager) mysteryShip() beep.Streamer {
	return &warble{
		sr:       m.sampleRate,
		carrier:  700,
		modFreq:  4,
		modDepth: 200,
		duration: m.samples(60_000),
		volume:   0.12,
	}
}

// mysteryShipHit is a rapid ascending triplet.
func (m *Manager) mysteryShipHit() beep.Streamer {
	return beep.Seq(
		&sineTone{sr: m.sampleRate, freq: 600, duration: m.samples(80), ramp: m.samples(10), volume: 0.25},
		&sineTone{sr: m.sampleRate, freq: 800, duration: m.samples(80), ramp: m.samples(10), volume: 0.25},
		&sineTone{sr: m.sampleRate, freq: 1000, duration: m.samples(120), ramp: m.samples(10), volume: 0.25},
	)
}

// gameOver is a slow descending three-note dirge.
func (m *Manager) gameOver() beep.Streamer {
	return beep.Seq(
		&sineTone{sr: m.sampleRate, freq: 392, duration: m.samples(300), ramp: m.samples(20), volume: 0.25},
		&sineTone{sr: m.sampleRate, freq: 330, duration: m.samples(300), ramp: m.samples(20), volume: 0.25},
		&sineTone{sr: m.sampleRate, freq: 262, duration: m.samples(600), ramp: m.samples(20), volume: 0.25},
	)
}

// movementFreqs are the four bass notes cycled as the formation steps,
// descending like the arcade heartbeat.
var movementFreqs = [4]float64{160, 150, 140, 130}

func (m *Manager) invaderMovement(index int) beep.Streamer {
	return &sineTone{
		sr:       m.sampleRate,
		freq:     movementFreqs[index%len(movementFreqs)],
		duration: m.samples(90),
		ramp:     m.samples(8),
		volume:   0.3,
	}
}

// mix sums streamers into one, ending when all inputs end. beep.Mixer keeps
// streaming silence after its inputs drain, which would hold finished effects
// in the speaker mixer forever, so this wraps it with a done check.
func mix(streamers ...beep.Streamer) beep.Streamer {
	active := make([]beep.Streamer, len(streamers))
	copy(active, streamers)
	return &finiteMix{streamers: active}
}

type finiteMix struct {
	streamers []beep.Streamer
}

func (fm *finiteMix) Stream(samples [][2]float64) (int, bool) {
	if len(fm.streamers) == 0 {
		return 0, false
	}

	for i := range samples {
		samples[i][0] = 0
		samples[i][1] = 0
	}

	tmp := make([][2]float64, len(samples))
	max := 0
	remaining := fm.streamers[:0]
	for _, s := range fm.streamers {
		n, ok := s.Stream(tmp[:len(samples)])
		for i := 0; i < n; i++ {
			samples[i][0] += tmp[i][0]
			samples[i][1] += tmp[i][1]
		}
		if n > max {
			max = n
		}
		if ok {
			remaining = append(remaining, s)
		}
	}
	fm.streamers = remaining

	return max, len(fm.streamers) > 0
}

func (fm *finiteMix) Err() error { return nil }
