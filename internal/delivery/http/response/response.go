package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the structured JSON envelope for clients that negotiate a
// machine-readable reply. Error holds the stable fault code; Details carries
// operator diagnostics and is only populated on the JSON path.
type Response struct {
	OK        bool        `json:"ok"`
	Error     string      `json:"error,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a structured success response
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Response{
		OK:        true,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends a structured error response with a machine-readable code
func Error(c *gin.Context, code int, kind string, details interface{}) {
	c.JSON(code, Response{
		OK:        false,
		Error:     kind,
		Details:   details,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
