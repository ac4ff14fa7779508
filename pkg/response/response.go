package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Body is the uniform envelope for success and error messages. List and
// point-lookup endpoints return their documents directly; this envelope is
// for everything that reports an outcome rather than data.
type Body struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

func build(ctx *gin.Context, success bool, message string, details interface{}) Body {
	return Body{
		Success:   success,
		Message:   message,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Error:     details,
	}
}

// OK writes a success envelope with the given status.
func OK(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, build(ctx, true, message, nil))
}

// Fail writes an error envelope with the given status and optional details.
func Fail(ctx *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, build(ctx, false, message, details))
}

// AbortFail writes an error envelope and aborts the handler chain.
// For use in middleware.
func AbortFail(ctx *gin.Context, status int, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, build(ctx, false, message, details))
}
