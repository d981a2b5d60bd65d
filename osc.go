package soundmaker

import (
	"math"
	"math/rand"
)

// Waveform selects the oscillator shape used by Signal.
type Waveform int

const (
	// Sine is a pure sine wave.
	Sine Waveform = iota
	// Square is the sign of a sine wave: harsh, reedy.
	Square
	// Triangle is a sine wave folded through asin.
	Triangle
	// AnalogSaw sums sine harmonics: warm, smooth, and the most
	// expensive kind. Signal uses DefaultSawHarmonics partials; use
	// AnalogSawSignal to pick the count.
	AnalogSaw
	// DigitalSaw is a piecewise-linear sawtooth: cheap and harsh.
	DigitalSaw
	// Noise draws a fresh uniform value in [-1, 1] on every call.
	Noise
)

// DefaultSawHarmonics is the partial count AnalogSaw uses unless an
// explicit count is given to AnalogSawSignal.
const DefaultSawHarmonics = 50

// LFO describes a low-frequency oscillator that perturbs the phase of
// another oscillator, modelling vibrato. The zero value applies no
// modulation.
type LFO struct {
	Hertz     float64
	Amplitude float64
}

// AngularVelocity converts a frequency in hertz to radians per second.
func AngularVelocity(hertz float64) float64 {
	return hertz * 2 * math.Pi
}

// Frequency maps a semitone offset to hertz on an equal-tempered scale
// anchored at 8 Hz, so Frequency(0) == 8 and each +12 doubles the pitch.
// Negative offsets are legal and descend below the anchor.
func Frequency(semitone int) float64 {
	return 8.0 * math.Pow(math.Pow(2, 1.0/12.0), float64(semitone))
}

// Signal oscillates between -1 and 1. Time is the x-axis, the returned
// sample the y-axis. All kinds except Noise are pure functions of
// (time, hertz, lfo); Noise returns an independent random sample per call.
func Signal(time, hertz float64, wave Waveform, lfo LFO) float64 {
	switch wave {
	case Sine:
		return math.Sin(phaseAt(time, hertz, lfo))
	case Square:
		if math.Sin(phaseAt(time, hertz, lfo)) >= 0 {
			return 1
		}
		return -1
	case Triangle:
		return math.Asin(math.Sin(phaseAt(time, hertz, lfo))) * (2 / math.Pi)
	case AnalogSaw:
		return AnalogSawSignal(time, hertz, DefaultSawHarmonics, lfo)
	case DigitalSaw:
		return (2 / math.Pi) * (hertz*math.Pi*math.Mod(time, 1/hertz) - math.Pi/2)
	case Noise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// AnalogSawSignal is the AnalogSaw kind with an explicit partial count.
// More harmonics get closer to an ideal sawtooth at a higher per-sample
// cost. Counts below 1 fall back to DefaultSawHarmonics.
func AnalogSawSignal(time, hertz float64, harmonics int, lfo LFO) float64 {
	if harmonics < 1 {
		harmonics = DefaultSawHarmonics
	}
	phase := phaseAt(time, hertz, lfo)
	var sum float64
	for n := 1; n < harmonics; n++ {
		sum += math.Sin(float64(n)*phase) / float64(n)
	}
	return sum * (2 / math.Pi)
}

func phaseAt(time, hertz float64, lfo LFO) float64 {
	return AngularVelocity(hertz)*time +
		lfo.Amplitude*hertz*math.Sin(AngularVelocity(lfo.Hertz)*time)
}
