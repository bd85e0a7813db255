package queries

import (
	"rugboost-api/internal/domain/photo"
	"rugboost-api/internal/pkg/errs"
)

var ErrPhotoPlanRejected = errs.New("photo capture action rejected")

//go:generate mockgen -source=photo.go -destination=../../../tests/mock/queries/photo_mock.go -package=queriesmock

type PhotoPlan struct {
	Photos      []photo.Photo
	Progress    photo.Progress
	Mode        photo.Mode
	CurrentStep *photo.Step
	// FailedAction is the index of the rejected action, or -1.
	FailedAction int
}

type PhotoQueries interface {
	Plan(actions []photo.Action) (*PhotoPlan, error)
}

type photoQueriesImpl struct{}

func NewPhotoQueries() PhotoQueries {
	return &photoQueriesImpl{}
}

// Plan replays actions through a fresh sequencer. When an action is rejected
// the plan reflects the state before it and the error is marked
// ErrPhotoPlanRejected.
func (q *photoQueriesImpl) Plan(actions []photo.Action) (*PhotoPlan, error) {
	if len(actions) > maxPhotoActions {
		return nil, errs.Mark(errs.New("too many capture actions"), ErrPhotoPlanRejected)
	}

	seq, failed, err := photo.Replay(actions)
	plan := &PhotoPlan{
		Photos:       seq.Photos(),
		Progress:     seq.Progress(),
		Mode:         seq.Mode(),
		FailedAction: failed,
	}
	if step, ok := seq.CurrentStep(); ok {
		plan.CurrentStep = &step
	}
	if err != nil {
		return plan, errs.Mark(err, ErrPhotoPlanRejected)
	}
	return plan, nil
}

const maxPhotoActions = 200
