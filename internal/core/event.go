package core

// EventKind identifies a discrete side effect produced by a simulation step.
type EventKind int

const (
	EventWallHit   EventKind = iota // Ball bounced off a side or top wall
	EventLifeLost                   // Ball dropped below the playfield
	EventPaddleHit                  // Ball deflected by the paddle
	EventBrickHit                   // A brick was destroyed
	EventLevelUp                    // Grid cleared, next level started
	EventGameWon                    // Final level cleared
	EventGameLost                   // Last life lost
)

// String returns the event name as used by audio and spectator feeds.
func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "WallHit"
	case EventLifeLost:
		return "LifeLost"
	case EventPaddleHit:
		return "PaddleHit"
	case EventBrickHit:
		return "BrickHit"
	case EventLevelUp:
		return "LevelUp"
	case EventGameWon:
		return "GameWon"
	case EventGameLost:
		return "GameLost"
	default:
		return "Unknown"
	}
}

// Event is emitted by a step in detection order.
// Row and Col identify the brick for EventBrickHit; Points is the score delta.
type Event struct {
	Kind   EventKind
	Row    int
	Col    int
	Points int
}

// CountEvents returns how many events of the given kind are in the slice.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
