package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	coinFreq         = 880.0
	coinDuration     = 60 * time.Millisecond
	gameOverFrom     = 440.0
	gameOverTo       = 110.0
	gameOverDuration = 400 * time.Millisecond
)

// CoinSound is a short sine blip
func CoinSound(rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, coinFreq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(coinDuration), sine),
		Base:     2,
		Volume:   -1,
	}
}

// GameOverSound is a falling square-wave buzz
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	return &effects.Volume{
		Streamer: NewSweep(gameOverFrom, gameOverTo, gameOverDuration, rate),
		Base:     2,
		Volume:   -2,
	}
}

// sweep is a square oscillator whose frequency glides linearly between two values
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a square wave gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }
