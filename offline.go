package soundmaker

import (
	"encoding/binary"
	"errors"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// Render drives a mixer without an audio device, producing seconds worth
// of mono samples at the given rate. Notes may be added between Render
// calls; the mixer clock advances with each rendered frame exactly as it
// would under a live output. Do not render a mixer that is attached to a
// running Player.
func Render(m *Mixer, sampleRate int, seconds float64) []float64 {
	frames := int(float64(sampleRate) * seconds)
	step := 1 / float64(sampleRate)
	out := make([]float64, frames)
	for i := range out {
		out[i] = m.Tick(step)
	}
	return out
}

// EncodeWAVFloat32LE wraps mono samples in a minimal IEEE-float WAV
// container.
func EncodeWAVFloat32LE(samples []float64, sampleRate int) []byte {
	const channels = 1
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3) // IEEE float
	binary.LittleEndian.PutUint16(out[22:], channels)
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(float32(s)))
	}
	return out
}

// DominantFrequency returns the frequency in hertz of the strongest
// spectral component of samples, computed over the largest power-of-two
// prefix with a Hann window. Resolution is sampleRate divided by that
// prefix length.
func DominantFrequency(samples []float64, sampleRate int) (float64, error) {
	n := 1
	for n*2 <= len(samples) {
		n *= 2
	}
	if n < 4 {
		return 0, errors.New("not enough samples for analysis")
	}
	f, err := fft.New(n)
	if err != nil {
		return 0, err
	}
	buf := make([]complex128, n)
	for i := 0; i < n; i++ {
		window := (1 - math.Cos(2*math.Pi*float64(i)/float64(n))) / 2
		buf[i] = complex(samples[i]*window, 0)
	}
	buf = f.Transform(buf)
	best, bestMag := 0, 0.0
	for i := 1; i <= n/2; i++ {
		if mag := cmplx.Abs(buf[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}
	return float64(best) * float64(sampleRate) / float64(n), nil
}
