package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
)

// InternalErrorMessage is the body sent for errors the client cannot act on.
const InternalErrorMessage = "Erro interno do servidor"

// RespondError aborts the request with err as {"error": message} and the
// status of its kind. Internal errors are logged and answered generically.
func RespondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.Internal {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(kind.Status(), gin.H{"error": apperror.MessageOf(err, InternalErrorMessage)})
}
