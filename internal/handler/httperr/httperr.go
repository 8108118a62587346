package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope the error middleware renders for errors pushed
// through the gin error stack.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// New builds a Response with the given status and public message.
func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// AbortWithError records err on the context for logging and aborts the
// request with the public envelope. err must be non-nil; the original error
// is kept on the gin error stack for monitoring.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
