package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
	"github.com/01moynul/aguadelivery-golang/internal/middleware"
)

// respondError writes err with the same body and status rules the auth
// middleware uses.
func respondError(c *gin.Context, err error) {
	middleware.RespondError(c, err)
}

// bindJSON binds the request body into input. Any binding failure is
// reported as a validation error carrying msg.
func bindJSON(c *gin.Context, input any, msg string) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		respondError(c, apperror.ValidationError(msg))
		return false
	}
	return true
}
