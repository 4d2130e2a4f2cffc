package memory

// NoTile marks an empty selection slot.
const NoTile = -1

// Phase is the state of the selection machine.
type Phase int

const (
	PhaseIdle        Phase = iota // nothing flipped
	PhaseOneSelected              // first card flipped
	PhaseResolved                 // both cards flipped and compared
)

// String returns the phase name used in snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneSelected:
		return "one_selected"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Selection holds the board positions of the cards under comparison.
// Second is only ever set while First is set.
type Selection struct {
	First  int
	Second int
}

// EmptySelection returns a selection with both slots unset.
func EmptySelection() Selection {
	return Selection{First: NoTile, Second: NoTile}
}

// Phase reports which state the selection is in.
func (s Selection) Phase() Phase {
	switch {
	case s.First == NoTile:
		return PhaseIdle
	case s.Second == NoTile:
		return PhaseOneSelected
	default:
		return PhaseResolved
	}
}

// Holds reports whether index occupies either slot.
func (s Selection) Holds(index int) bool {
	return index != NoTile && (s.First == index || s.Second == index)
}

// next applies a click that already passed the ignore checks.
// A click in PhaseResolved starts a new round with that card.
func (s Selection) next(index int) Selection {
	switch s.Phase() {
	case PhaseIdle:
		return Selection{First: index, Second: NoTile}
	case PhaseOneSelected:
		return Selection{First: s.First, Second: index}
	default:
		return Selection{First: index, Second: NoTile}
	}
}
