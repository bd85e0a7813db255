package request

import "rugboost-api/internal/domain/contact"

// ContactRequest is validated by the domain so the caller sees the same
// messages as the web form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Website string `json:"website"`
}

func (r *ContactRequest) ToDomain() contact.Submission {
	return contact.Submission{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
		Website: r.Website,
	}
}
