//go:build unit || e2e

package builder

import (
	reqdto "rugboost-api/internal/handler/dto/request"
)

type RegistrationBuilder struct {
	AccessToken string
	Email       string
	Password    string
}

func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		AccessToken: "access-token",
		Email:       "client@example.com",
		Password:    "Str0ngPassword",
	}
}

func (r *RegistrationBuilder) With(mutate func(*RegistrationBuilder)) *RegistrationBuilder {
	mutate(r)
	return r
}

func (r *RegistrationBuilder) BuildRequest() reqdto.CompleteRegistrationRequest {
	return reqdto.CompleteRegistrationRequest{
		AccessToken: r.AccessToken,
		Email:       r.Email,
		Password:    r.Password,
	}
}
