package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/wavelab/soundmaker"
)

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		tempo      = flag.Float64("tempo", 120, "beats per minute")
		seconds    = flag.Float64("seconds", 8, "how long to play")
		limit      = flag.Float64("limit", 1, "hard amplitude ceiling (0 = none)")
	)
	flag.Parse()

	pl, err := soundmaker.NewPlayer(*sampleRate, soundmaker.WithAmplitudeLimit(*limit))
	if err != nil {
		log.Fatal(err)
	}
	defer pl.Stop()

	cfg := soundmaker.DefaultSequencerConfig()
	cfg.Tempo = *tempo
	seq, err := soundmaker.NewSequencer(cfg)
	if err != nil {
		log.Fatal(err)
	}

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
	for _, tr := range tracks {
		if err := seq.AddTrack(tr.instrument, tr.pattern); err != nil {
			log.Fatal(err)
		}
	}

	bell := soundmaker.NewBell()
	melody := []int{64, 67, 71, 76}

	deadline := time.After(time.Duration(*seconds * float64(time.Second)))
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	bar := 0
	for {
		select {
		case <-deadline:
			fmt.Printf("done after %.1fs, %d notes still sounding\n",
				pl.Time(), pl.SimultaneousNotes())
			return
		case <-ticker.C:
			voices := seq.Update()
			if len(voices) == 0 {
				continue
			}
			pl.AddNotes(voices...)
			if seq.CurrentBeat() == 0 {
				pl.AddNote(soundmaker.NewVoice(bell, melody[bar%len(melody)]))
				bar++
			}
		}
	}
}
