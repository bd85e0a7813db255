package response

import "rugboost-api/internal/domain/registration"

type RegistrationResponse struct {
	Success   bool   `json:"success"`
	UserID    string `json:"userId"`
	IsNewUser bool   `json:"isNewUser"`
}

func FromRegistrationResult(r *registration.Result) *RegistrationResponse {
	return &RegistrationResponse{
		Success:   true,
		UserID:    r.UserID.String(),
		IsNewUser: r.IsNewUser,
	}
}
