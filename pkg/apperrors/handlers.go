package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every error response uses.
type ErrorResponse struct {
	Error     *AppError `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// GinErrorHandler writes AppErrors to the response.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		// Anything that is not an AppError is an internal failure; raw
		// store errors must never reach the client.
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 && !h.Debug {
		appErr = InternalError(appErr.Err)
		appErr.Details = nil
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("server error: %v", err)
	}

	resp := ErrorResponse{Error: appErr}
	if appErr.HTTPCode >= 500 {
		// Correlation id for operator-side log lookup.
		resp.RequestID = c.Writer.Header().Get("X-Request-ID")
	}

	c.JSON(appErr.HTTPCode, resp)
}

// HandleError is the shorthand used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}
