package core

// EventKind classifies something noteworthy that happened during a step.
type EventKind int

const (
	EventNone EventKind = iota
	EventStart
	EventBounce     // wall bounce
	EventPaddleHit  // ball hit a paddle
	EventBrickBreak // brick destroyed
	EventPoint      // Pong point scored (Value: 1 player, 2 AI)
	EventFood       // snake ate
	EventPieceLock  // tetromino locked
	EventLineClear  // Value: lines cleared
	EventPowerUp    // Value: power-up type
	EventLifeLost
	EventLevelUp
	EventGameOver
	EventWin
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventBounce:
		return "bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickBreak:
		return "brick_break"
	case EventPoint:
		return "point"
	case EventFood:
		return "food"
	case EventPieceLock:
		return "piece_lock"
	case EventLineClear:
		return "line_clear"
	case EventPowerUp:
		return "power_up"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventWin:
		return "win"
	default:
		return "none"
	}
}

// Event is a single step event.
type Event struct {
	Kind  EventKind
	Value int
}

// Events collects step events. The zero value is ready to use.
type Events struct {
	list []Event
}

// Emit records an event.
func (e *Events) Emit(kind EventKind, value int) {
	e.list = append(e.list, Event{Kind: kind, Value: value})
}

// Drain returns the recorded events and empties the buffer.
func (e *Events) Drain() []Event {
	if len(e.list) == 0 {
		return nil
	}
	out := e.list
	e.list = nil
	return out
}
