package photo

import (
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("unknown capture action")

type ActionType string

const (
	ActionCapture    ActionType = "capture"
	ActionRemove     ActionType = "remove"
	ActionSelect     ActionType = "select"
	ActionAdditional ActionType = "additional"
)

// Action is one user interaction with the capture screen.
type Action struct {
	Type   ActionType
	Ref    string
	StepID string
}

func (s *Sequencer) Apply(a Action) error {
	switch a.Type {
	case ActionCapture:
		_, err := s.Capture(a.Ref)
		return err
	case ActionRemove:
		return s.Remove(a.StepID)
	case ActionSelect:
		return s.SelectStep(a.StepID)
	case ActionAdditional:
		return s.EnterAdditionalMode()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

// Replay runs actions through a fresh sequencer, stopping at the first
// failure. The index of the failing action is returned with the error.
func Replay(actions []Action) (*Sequencer, int, error) {
	s := NewSequencer()
	for i, a := range actions {
		if err := s.Apply(a); err != nil {
			return s, i, err
		}
	}
	return s, -1, nil
}
