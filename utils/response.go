package utils

import "github.com/gin-gonic/gin"

// Every marketplace endpoint answers with the same envelope:
// {"success": true, "data": ...} on success, {"success": false,
// "error": "snake_case_reason"} on failure. Controllers never build
// response bodies by hand.

// JSONSuccess writes the success envelope around payload.
func JSONSuccess(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, gin.H{"success": true, "data": payload})
}

// JSONError writes the failure envelope. reason is the sentinel error
// text clients switch on (see services/errors.go).
func JSONError(c *gin.Context, code int, reason string) {
	c.JSON(code, gin.H{"success": false, "error": reason})
}
