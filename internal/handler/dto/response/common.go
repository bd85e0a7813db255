package response

type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the flat error shape of the public form endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
