package handlers

import (
	"github.com/gin-gonic/gin"

	"itacatech/internal/models"
)

func getStringFromCtx(c *gin.Context, key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func getUserAndRole(c *gin.Context) (userID string, role models.UserRole) {
	userID = getStringFromCtx(c, "user_id")
	role = models.UserRole(getStringFromCtx(c, "role"))
	return
}
