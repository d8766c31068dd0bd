package respond

import (
	"github.com/gin-gonic/gin"
)

// Error writes {success:false, error:message}. err is attached to the gin
// context so the request logger can report the cause; it never reaches the client.
func Error(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"success": false, "error": message})
}

// OK writes {success:true, ...fields} with the given status.
func OK(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}
