package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wavelab/soundmaker"
)

// Renders two bars of a drum pattern with a bell over the top, entirely
// offline, and writes the result as a float32 WAV.
func main() {
	var (
		out        = flag.String("o", "beat.wav", "output WAV path")
		sampleRate = flag.Int("sample-rate", 44100, "render sample rate")
		tempo      = flag.Float64("tempo", 120, "beats per minute")
		bars       = flag.Int("bars", 2, "bars to render")
	)
	flag.Parse()

	x, o := soundmaker.Beat, soundmaker.Rest
	tracks := []struct {
		instrument soundmaker.Instrument
		pattern    []soundmaker.BeatState
	}{
		{soundmaker.NewDrumKick(), []soundmaker.BeatState{
			x, o, o, o, o, o, x, o, x, o, o, o, o, o, o, o}},
		{soundmaker.NewDrumSnare(), []soundmaker.BeatState{
			o, o, o, o, x, o, o, o, o, o, o, o, x, o, o, o}},
		{soundmaker.NewDrumHiHat(), []soundmaker.BeatState{
			x, o, x, o, x, o, x, o, x, o, x, o, x, o, x, x}},
	}

	m := soundmaker.NewMixer(soundmaker.WithAmplitudeLimit(1))
	subBeat := 60.0 / *tempo / 4
	bell := soundmaker.NewBell()
	melody := []int{64, 67, 71, 76}

	var samples []float64
	for bar := 0; bar < *bars; bar++ {
		m.AddNote(soundmaker.NewVoice(bell, melody[bar%len(melody)]))
		for slot := 0; slot < 16; slot++ {
			for _, tr := range tracks {
				if tr.pattern[slot] == x {
					m.AddNote(soundmaker.NewVoice(tr.instrument, soundmaker.PercussionPitch))
				}
			}
			samples = append(samples, soundmaker.Render(m, *sampleRate, subBeat)...)
		}
	}
	// Let the last hits ring out.
	samples = append(samples, soundmaker.Render(m, *sampleRate, 1.5)...)

	if err := os.WriteFile(*out, soundmaker.EncodeWAVFloat32LE(samples, *sampleRate), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s: %.2fs at %d Hz\n", *out,
		float64(len(samples))/float64(*sampleRate), *sampleRate)

	if peak, err := soundmaker.DominantFrequency(samples, *sampleRate); err == nil {
		fmt.Printf("dominant frequency: %.1f Hz\n", peak)
	}
}
