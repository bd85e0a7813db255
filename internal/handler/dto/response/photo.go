package response

import (
	"rugboost-api/internal/domain/photo"
	"rugboost-api/internal/usecase/queries"
)

type PhotoResponse struct {
	StepID string `json:"stepId"`
	Label  string `json:"label"`
	Ref    string `json:"ref"`
}

type PhotoStepResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	Tip         string `json:"tip,omitempty"`
}

type PhotoProgressResponse struct {
	RequiredDone  int `json:"requiredDone"`
	RequiredTotal int `json:"requiredTotal"`
	Supplementary int `json:"supplementary"`
	Total         int `json:"total"`
}

type PhotoPlanResponse struct {
	Photos       []PhotoResponse       `json:"photos"`
	Progress     PhotoProgressResponse `json:"progress"`
	Mode         string                `json:"mode"`
	CurrentStep  *PhotoStepResponse    `json:"currentStep,omitempty"`
	FailedAction *int                  `json:"failedAction,omitempty"`
}

func FromPhotoPlan(p *queries.PhotoPlan) *PhotoPlanResponse {
	photos := make([]PhotoResponse, len(p.Photos))
	for i, ph := range p.Photos {
		photos[i] = PhotoResponse{StepID: ph.StepID, Label: ph.Label, Ref: ph.Ref}
	}
	res := &PhotoPlanResponse{
		Photos: photos,
		Progress: PhotoProgressResponse{
			RequiredDone:  p.Progress.RequiredDone,
			RequiredTotal: p.Progress.RequiredTotal,
			Supplementary: p.Progress.Supplementary,
			Total:         p.Progress.Total,
		},
		Mode: string(p.Mode),
	}
	if p.CurrentStep != nil {
		res.CurrentStep = fromStep(*p.CurrentStep)
	}
	if p.FailedAction >= 0 {
		idx := p.FailedAction
		res.FailedAction = &idx
	}
	return res
}

func fromStep(s photo.Step) *PhotoStepResponse {
	return &PhotoStepResponse{ID: s.ID, Title: s.Title, Instruction: s.Instruction, Tip: s.Tip}
}

// FromPhotoSteps lists the required capture steps in order.
func FromPhotoSteps(steps []photo.Step) []*PhotoStepResponse {
	res := make([]*PhotoStepResponse, len(steps))
	for i, s := range steps {
		res[i] = fromStep(s)
	}
	return res
}
