package soundmaker

// noteState tracks a note's lifecycle explicitly rather than inferring it
// from timestamp comparisons, which breaks down when a note starts at
// time 0.
type noteState int

const (
	noteSounding noteState = iota
	noteReleasing
	noteFinished
)

// soundingOff is the off timestamp carried by a sounding note. Instruments
// detect "still sounding" as timeOn > timeOff, so the value must sit below
// any legal on-time, including a note started at exactly time zero.
const soundingOff = -1.0

// note is one sounding (or releasing) instance of an instrument, owned by
// the mixer and guarded by its lock.
type note struct {
	pitch      int
	on         float64
	off        float64
	state      noteState
	kind       string
	instrument Instrument
}

// matches reports whether the note and voice are the same logical voice:
// same pitch and instrument kind.
func (n *note) matches(v Voice) bool {
	return n.pitch == v.Pitch && n.kind == v.InstrumentName()
}
