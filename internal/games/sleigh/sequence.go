package sleigh

// Phase is the layered ending state machine on top of normal play.
type Phase int

const (
	PhaseNormal Phase = iota
	PhaseApproach
	PhaseJoyride
	PhaseLevelComplete
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseApproach:
		return "final_approach"
	case PhaseJoyride:
		return "joyride"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Sequence owns the ending state and the one-shot trigger sets for the
// story tables. A fresh Sequence is created for every session.
type Sequence struct {
	Phase        Phase
	JoyrideTimer float64

	giftDropped bool // Joyride start has been armed
	musicCued   bool

	moments   map[string]bool
	landmarks map[string]bool
	letters   map[int]bool // Index into the narrative letter table
}

func NewSequence() *Sequence {
	return &Sequence{
		moments:   make(map[string]bool),
		landmarks: make(map[string]bool),
		letters:   make(map[int]bool),
	}
}

// Ending reports whether the scripted sequence has started.
func (s *Sequence) Ending() bool {
	return s.Phase != PhaseNormal
}

// Finished reports whether the sequence reached a terminal phase.
func (s *Sequence) Finished() bool {
	return s.Phase == PhaseLevelComplete || s.Phase == PhaseVictory
}

// once marks key in set and reports whether it was not yet marked.
func once[K comparable](set map[K]bool, key K) bool {
	if set[key] {
		return false
	}
	set[key] = true
	return true
}
