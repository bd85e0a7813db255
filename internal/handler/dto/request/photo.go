package request

import "rugboost-api/internal/domain/photo"

type PhotoActionRequest struct {
	Type   string `json:"type" binding:"required,oneof=capture remove select additional"`
	Ref    string `json:"ref"`
	StepID string `json:"stepId"`
}

type PhotoPlanRequest struct {
	Actions []PhotoActionRequest `json:"actions" binding:"dive"`
}

func (r *PhotoPlanRequest) ToDomain() []photo.Action {
	actions := make([]photo.Action, len(r.Actions))
	for i, a := range r.Actions {
		actions[i] = photo.Action{
			Type:   photo.ActionType(a.Type),
			Ref:    a.Ref,
			StepID: a.StepID,
		}
	}
	return actions
}
