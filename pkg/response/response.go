package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/robinboard/api/pkg/errors"
)

// Result is the envelope returned by every mutating endpoint.
type Result struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Filename string      `json:"filename,omitempty"`
}

// JSON sends a raw domain payload. Read endpoints return their data
// unwrapped so display clients can consume it directly.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// Success responds with a bare {"success": true} envelope.
func Success(c *gin.Context) {
	JSON(c, http.StatusOK, Result{Success: true})
}

// SuccessWith responds with a success envelope carrying extra fields.
func SuccessWith(c *gin.Context, result Result) {
	result.Success = true
	JSON(c, http.StatusOK, result)
}

// Error converts the error into the {"success": false, "message": ...}
// contract at the error's HTTP status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Result{Success: false, Message: appErr.Message})
}
