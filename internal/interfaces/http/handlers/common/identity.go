package common

import (
	"github.com/gin-gonic/gin"

	"campusfix/internal/shared/authorization"
)

// Identity returns the authenticated caller stored by the auth middleware.
// A zero user ID means the request never passed authentication.
func Identity(c *gin.Context) (uint, authorization.UserRole) {
	rawID, _ := c.Get("user_id")
	userID, _ := rawID.(uint)
	role := authorization.ParseUserRole(c.GetString("user_role"))
	return userID, role
}
