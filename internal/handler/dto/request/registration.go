package request

import "rugboost-api/internal/domain/registration"

type CompleteRegistrationRequest struct {
	AccessToken string `json:"accessToken"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

func (r *CompleteRegistrationRequest) ToDomain() registration.Request {
	return registration.Request{
		AccessToken: r.AccessToken,
		Email:       r.Email,
		Password:    r.Password,
	}
}
