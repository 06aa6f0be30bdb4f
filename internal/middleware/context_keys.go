package middleware

import "github.com/gin-gonic/gin"

// usernameKey is the key used to store the authenticated username in the context.
// Using a custom type prevents collisions.
const usernameKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the Gin context.
// It returns the username and a boolean indicating if it was found.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	usernameVal, exists := c.Get(string(usernameKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(usernameKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	username, ok := usernameVal.(string)
	if !ok {
		return "", false
	}

	return username, true
}
