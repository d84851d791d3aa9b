package core

// Cue is a discrete audio event raised by the simulation.
// The sound layer maps cues to playback; the simulation never touches audio.
type Cue int

const (
	CueFired Cue = iota
	CueJumped
	CueDamaged
	CueCollected
	CueWon
	CueLost
)

// String returns the cue name used in logs and theme files.
func (c Cue) String() string {
	switch c {
	case CueFired:
		return "fired"
	case CueJumped:
		return "jumped"
	case CueDamaged:
		return "damaged"
	case CueCollected:
		return "collected"
	case CueWon:
		return "won"
	case CueLost:
		return "lost"
	default:
		return "unknown"
	}
}
