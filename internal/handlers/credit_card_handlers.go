package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/middleware"
	"github.com/01moynul/aguadelivery-golang/internal/profile"
)

type CreditCardInput struct {
	Brand  string `json:"brand" binding:"required"`
	Last4  string `json:"last4" binding:"required"`
	Expiry string `json:"expiry" binding:"required"`
}

func (h *Handlers) ListCreditCards(c *gin.Context) {
	cards, selected, err := h.Profile.ListCreditCards(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"creditCards":          cards,
		"selectedCreditCardId": selected,
	})
}

func (h *Handlers) AddCreditCard(c *gin.Context) {
	var input CreditCardInput
	if !bindJSON(c, &input, allFieldsRequired) {
		return
	}

	card, err := h.Profile.AddCreditCard(c.Request.Context(), middleware.UserID(c), profile.CreditCardInput{
		Brand:  input.Brand,
		Last4:  input.Last4,
		Expiry: input.Expiry,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Cartão adicionado com sucesso",
		"creditCard": card,
	})
}

func (h *Handlers) DeleteCreditCard(c *gin.Context) {
	if err := h.Profile.DeleteCreditCard(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cartão removido com sucesso"})
}

func (h *Handlers) SelectCreditCard(c *gin.Context) {
	if err := h.Profile.SelectCreditCard(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cartão selecionado com sucesso"})
}
