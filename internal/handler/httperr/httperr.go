package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the nested error body used by authenticated back-office routes.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FlatResponse is the {"error": "..."} body the public forms and the auth
// layer return. Browser clients read the message straight from "error".
type FlatResponse struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError writes a Response and records err for the request logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	abort(c, status, err, resp)
}

// AbortFlat writes a FlatResponse. err may be nil when there is no underlying
// cause worth logging (a missing token, a tripped rate limit).
func AbortFlat(c *gin.Context, status int, err error, msg string) {
	abort(c, status, err, FlatResponse{Status: status, Error: msg})
}

func abort(c *gin.Context, status int, err error, body any) {
	if err != nil {
		_ = c.Error(&gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: body,
		})
	}
	c.AbortWithStatusJSON(status, body)
}
