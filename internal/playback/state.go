package playback

// State is the playback lifecycle state.
type State uint8

const (
	Idle State = iota
	Playing
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Transition returns to when the move is legal and s otherwise.
func (s State) Transition(to State) State {
	ok := false
	switch s {
	case Idle:
		ok = to == Playing
	case Playing:
		ok = to == Paused || to == Finished || to == Playing
	case Paused:
		ok = to == Playing || to == Paused || to == Finished
	case Finished:
		ok = to == Playing || to == Paused
	}
	if !ok {
		return s
	}
	return to
}
