package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is a finite oscillator gliding from one frequency to another
// with a linear attack and release.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	attack   int
	release  int
	pos      int
	phase    float64
	rng      *rand.Rand
}

func newSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) *sweep {
	total := rate.N(d)
	return &sweep{
		from:    from,
		to:      to,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  rate.N(5 * time.Millisecond),
		release: total / 3,
		rng:     rand.New(rand.NewSource(int64(total))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		progress := float64(s.pos) / float64(s.total)
		freq := core.Lerp(s.from, s.to, progress)

		val := oscillate(s.wave, s.phase, s.rng) * s.envelope()
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func (s *sweep) envelope() float64 {
	if s.attack > 0 && s.pos < s.attack {
		return float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left < s.release {
		return float64(left) / float64(s.release)
	}
	return 1
}

func oscillate(w Wave, phase float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 0.5
		}
		return -0.5
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// effect builds the one-shot stream for a sound name.
func effect(s core.Sound, rate beep.SampleRate) (beep.Streamer, bool) {
	switch s {
	case core.SoundJump:
		return newSweep(320, 720, 120*time.Millisecond, WaveSquare, rate), true
	case core.SoundDash:
		return newSweep(0, 0, 150*time.Millisecond, WaveNoise, rate), true
	case core.SoundGrow:
		return newSweep(220, 140, 160*time.Millisecond, WaveSine, rate), true
	case core.SoundShrink:
		return newSweep(900, 1400, 120*time.Millisecond, WaveSine, rate), true
	case core.SoundGameOver:
		return newSweep(440, 90, 700*time.Millisecond, WaveSaw, rate), true
	default:
		return nil, false
	}
}

// musicLoop is an endless synthwave bass arpeggio with a kick on every beat.
type musicLoop struct {
	rate  beep.SampleRate
	beat  int
	pos   int
	phase float64
}

// Bass notes in Hz, one per beat.
var arpeggio = []float64{55, 55, 82.41, 73.42, 65.41, 65.41, 82.41, 98}

func newMusicLoop(rate beep.SampleRate) *musicLoop {
	return &musicLoop{
		rate: rate,
		beat: rate.N(time.Second * 60 / 128), // 128 BPM
	}
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := m.rate.N(90 * time.Millisecond)
	for i := range samples {
		step := (m.pos / m.beat) % len(arpeggio)
		inBeat := m.pos % m.beat

		kick := 0.0
		if inBeat < kickLen {
			env := 1 - float64(inBeat)/float64(kickLen)
			t := float64(inBeat) / float64(m.rate)
			kick = 0.5 * env * math.Sin(2*math.Pi*(50+100*env)*t)
		}

		bass := 0.25 * oscillate(WaveSaw, m.phase, nil)
		m.phase += arpeggio[step] / float64(m.rate)
		m.phase -= math.Floor(m.phase)

		val := kick + bass
		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }
