package photo

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrSupplementaryFull  = errors.New("all supplementary photo slots are used")
	ErrUnknownStep        = errors.New("unknown photo step")
	ErrRequiredIncomplete = errors.New("required photos are not complete")
	ErrEmptyRef           = errors.New("photo reference is required")
)

type Mode string

const (
	ModeGuided     Mode = "guided"
	ModeAdditional Mode = "additional"
)

// Photo is a captured image bound to a step. Ref is opaque to the sequencer
// (a storage key, URL or client-side file handle).
type Photo struct {
	StepID string
	Label  string
	Ref    string
}

type Progress struct {
	RequiredDone  int
	RequiredTotal int
	Supplementary int
	Total         int
}

// Sequencer walks a technician through the required shots and then up to
// SupplementarySlots issue close-ups. It is not safe for concurrent use.
type Sequencer struct {
	required map[string]Photo
	extras   []Photo
	current  int
	mode     Mode
	// lastExtra only grows so supplementary ids are never reused.
	lastExtra int
	onChange  func([]Photo)
}

type Option func(*Sequencer)

// WithOnChange registers fn to receive the ordered photo list after every
// mutation.
func WithOnChange(fn func([]Photo)) Option {
	return func(s *Sequencer) {
		s.onChange = fn
	}
}

func NewSequencer(opts ...Option) *Sequencer {
	s := &Sequencer{
		required: make(map[string]Photo, len(Steps)),
		mode:     ModeGuided,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sequencer) Mode() Mode {
	return s.mode
}

// CurrentStep returns the active required step. ok is false in additional mode.
func (s *Sequencer) CurrentStep() (step Step, ok bool) {
	if s.mode != ModeGuided {
		return Step{}, false
	}
	return Steps[s.current], true
}

// Capture stores ref for the active step in guided mode, or as the next issue
// close-up in additional mode.
func (s *Sequencer) Capture(ref string) (Photo, error) {
	if strings.TrimSpace(ref) == "" {
		return Photo{}, ErrEmptyRef
	}

	if s.mode == ModeAdditional {
		if len(s.extras) >= SupplementarySlots {
			return Photo{}, ErrSupplementaryFull
		}
		s.lastExtra++
		p := Photo{
			StepID: supplementaryPrefix + strconv.Itoa(s.lastExtra),
			Label:  fmt.Sprintf("Issue Close-up %d", s.lastExtra),
			Ref:    ref,
		}
		s.extras = append(s.extras, p)
		s.notify()
		return p, nil
	}

	step := Steps[s.current]
	p := Photo{StepID: step.ID, Label: step.Title, Ref: ref}
	s.required[step.ID] = p
	s.advance()
	s.notify()
	return p, nil
}

// advance moves to the next incomplete step after the current one, wrapping
// around, and switches to additional mode once every step has a photo.
func (s *Sequencer) advance() {
	for i := 1; i <= len(Steps); i++ {
		idx := (s.current + i) % len(Steps)
		if _, done := s.required[Steps[idx].ID]; !done {
			s.current = idx
			return
		}
	}
	s.mode = ModeAdditional
}

// Remove deletes the photo for stepID. Removing a required photo returns the
// sequencer to guided mode on that step.
func (s *Sequencer) Remove(stepID string) error {
	if idx := stepIndex(stepID); idx >= 0 {
		delete(s.required, stepID)
		s.current = idx
		s.mode = ModeGuided
		s.notify()
		return nil
	}

	for i, p := range s.extras {
		if p.StepID == stepID {
			s.extras = append(s.extras[:i], s.extras[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownStep, stepID)
}

// SelectStep makes stepID the active step, e.g. to retake a photo.
func (s *Sequencer) SelectStep(stepID string) error {
	idx := stepIndex(stepID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownStep, stepID)
	}
	s.current = idx
	s.mode = ModeGuided
	return nil
}

func (s *Sequencer) EnterAdditionalMode() error {
	if !s.RequiredComplete() {
		return ErrRequiredIncomplete
	}
	s.mode = ModeAdditional
	return nil
}

func (s *Sequencer) RequiredComplete() bool {
	return len(s.required) == len(Steps)
}

// Photos returns required photos in step order followed by supplementary
// photos in numeric order.
func (s *Sequencer) Photos() []Photo {
	out := make([]Photo, 0, len(s.required)+len(s.extras))
	for _, step := range Steps {
		if p, ok := s.required[step.ID]; ok {
			out = append(out, p)
		}
	}

	extras := append([]Photo(nil), s.extras...)
	sort.SliceStable(extras, func(i, j int) bool {
		return extraNumber(extras[i].StepID) < extraNumber(extras[j].StepID)
	})
	return append(out, extras...)
}

func (s *Sequencer) Progress() Progress {
	return Progress{
		RequiredDone:  len(s.required),
		RequiredTotal: len(Steps),
		Supplementary: len(s.extras),
		Total:         len(s.required) + len(s.extras),
	}
}

func (s *Sequencer) notify() {
	if s.onChange != nil {
		s.onChange(s.Photos())
	}
}

func extraNumber(stepID string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(stepID, supplementaryPrefix))
	if err != nil {
		return 0
	}
	return n
}
