package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/middleware"
	"github.com/01moynul/aguadelivery-golang/internal/profile"
)

const allFieldsRequired = "Todos os campos são obrigatórios"

type AddressInput struct {
	Street       string `json:"street" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
}

func (in AddressInput) toProfile() profile.AddressInput {
	return profile.AddressInput{
		Street:       in.Street,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
	}
}

func (h *Handlers) ListAddresses(c *gin.Context) {
	addresses, selected, err := h.Profile.ListAddresses(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"addresses":         addresses,
		"selectedAddressId": selected,
	})
}

func (h *Handlers) AddAddress(c *gin.Context) {
	var input AddressInput
	if !bindJSON(c, &input, allFieldsRequired) {
		return
	}

	address, err := h.Profile.AddAddress(c.Request.Context(), middleware.UserID(c), input.toProfile())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Endereço adicionado com sucesso",
		"address": address,
	})
}

func (h *Handlers) UpdateAddress(c *gin.Context) {
	var input AddressInput
	if !bindJSON(c, &input, allFieldsRequired) {
		return
	}

	address, err := h.Profile.UpdateAddress(c.Request.Context(), middleware.UserID(c), c.Param("id"), input.toProfile())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Endereço atualizado com sucesso",
		"address": address,
	})
}

func (h *Handlers) DeleteAddress(c *gin.Context) {
	if err := h.Profile.DeleteAddress(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Endereço removido com sucesso"})
}

func (h *Handlers) SelectAddress(c *gin.Context) {
	if err := h.Profile.SelectAddress(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Endereço selecionado com sucesso"})
}
