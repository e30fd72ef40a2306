package engine

// Cue names a sound played in response to an action
type Cue int

const (
	CueNone Cue = iota
	CueTap
	CueCollect
	CueBuy
	CueError
	CueMint
)

// String returns the cue name used in logs and audio configuration
func (c Cue) String() string {
	switch c {
	case CueTap:
		return "tap"
	case CueCollect:
		return "collect"
	case CueBuy:
		return "buy"
	case CueError:
		return "error"
	case CueMint:
		return "mint"
	default:
		return "none"
	}
}

// View is one of the tabbed screens
type View int

const (
	ViewHome View = iota
	ViewUpgrades
	ViewShop
	ViewTasks
	ViewEriDrop
	ViewInvite
)

// ViewCount is the number of tabs
const ViewCount = 6

// Valid reports whether v names a tab
func (v View) Valid() bool {
	return v >= ViewHome && v < ViewCount
}
