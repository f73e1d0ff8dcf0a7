package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/cep"
)

// LookupCEP handles GET /api/cep/:cep and answers the address record itself.
func (h *Handlers) LookupCEP(c *gin.Context) {
	address, err := cep.Lookup(c.Param("cep"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}
