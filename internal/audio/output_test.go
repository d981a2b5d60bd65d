package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

type recordingSource struct {
	value float64
	steps []float64
}

func (s *recordingSource) Tick(step float64) float64 {
	s.steps = append(s.steps, step)
	return s.value
}

func TestStreamReaderEncodesStereoFrames(t *testing.T) {
	src := &recordingSource{value: 0.25}
	r := NewStreamReader(src, 48000)

	p := make([]byte, 35) // 4 whole frames plus a partial one
	n, err := r.Read(p)
	if err != nil {
		t.Fatal(err)
	}
	if n != 32 {
		t.Fatalf("Read = %d bytes, want 32 (whole frames only)", n)
	}
	if len(src.steps) != 4 {
		t.Fatalf("source ticked %d times, want 4", len(src.steps))
	}
	for _, step := range src.steps {
		if math.Abs(step-1.0/48000) > 1e-15 {
			t.Fatalf("tick step = %v, want 1/48000", step)
		}
	}
	for frame := 0; frame < 4; frame++ {
		left := math.Float32frombits(binary.LittleEndian.Uint32(p[frame*8:]))
		right := math.Float32frombits(binary.LittleEndian.Uint32(p[frame*8+4:]))
		if left != 0.25 || right != 0.25 {
			t.Fatalf("frame %d = (%v, %v), want mono value on both channels", frame, left, right)
		}
	}
}

func TestStreamReaderTooSmallBuffer(t *testing.T) {
	src := &recordingSource{}
	r := NewStreamReader(src, 48000)
	n, err := r.Read(make([]byte, 7))
	if n != 0 || err != nil {
		t.Errorf("Read on sub-frame buffer = (%d, %v), want (0, nil)", n, err)
	}
	if len(src.steps) != 0 {
		t.Errorf("source ticked on a sub-frame read")
	}
}
