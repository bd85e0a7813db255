//go:build unit || e2e

package builder

import (
	reqdto "rugboost-api/internal/handler/dto/request"
)

type ContactBuilder struct {
	Name    string
	Email   string
	Subject string
	Message string
	Website string
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Question about rug cleaning",
		Message: "Do you handle silk rugs?",
	}
}

func (c *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(c)
	return c
}

func (c *ContactBuilder) BuildRequest() reqdto.ContactRequest {
	return reqdto.ContactRequest{
		Name:    c.Name,
		Email:   c.Email,
		Subject: c.Subject,
		Message: c.Message,
		Website: c.Website,
	}
}
