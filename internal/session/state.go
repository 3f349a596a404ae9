package session

// State is the reconciliation state of the working copy against the
// canonical copy.
type State int

const (
	// Clean means the working copy mirrors the canonical copy.
	Clean State = iota
	// Dirty means at least one field was edited since the last open or save.
	Dirty
	// Saving means the working copy has been handed to the Store.
	Saving
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	case Saving:
		return "saving"
	}
	return "unknown"
}
