package pipeline

import (
	"fmt"

	"github.com/google/uuid"
)

// State is the orchestrator's position in the fixed stage sequence.
type State int

const (
	StateIdle State = iota
	StateFetchingTranscript
	StateSummarizing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFetchingTranscript:
		return "FetchingTranscript"
	case StateSummarizing:
		return "Summarizing"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transition is allowed.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

var transitions = map[State][]State{
	StateIdle:               {StateFetchingTranscript},
	StateFetchingTranscript: {StateSummarizing, StateFailed},
	StateSummarizing:        {StateDone, StateFailed},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Session is the per-interaction working data. Fields fill in order:
// URL, then Transcript, then Summary.
type Session struct {
	ID         string
	URL        string
	Transcript string
	Summary    string
	State      State
	Err        error
}

// NewSession starts an Idle session for url.
func NewSession(url string) *Session {
	return &Session{
		ID:    uuid.NewString(),
		URL:   url,
		State: StateIdle,
	}
}

func (s *Session) advance(to State) error {
	if !CanTransition(s.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.State, to)
	}
	s.State = to
	return nil
}
