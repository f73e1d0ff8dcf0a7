package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
	"github.com/01moynul/aguadelivery-golang/internal/catalog"
)

// ListProducts handles GET /api/products?category=&search=
func (h *Handlers) ListProducts(c *gin.Context) {
	products := h.Catalog.List(catalog.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handlers) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperror.ValidationError("ID de produto inválido"))
		return
	}

	product, ok := h.Catalog.Get(productID)
	if !ok {
		respondError(c, apperror.NotFoundError("Produto não encontrado"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *Handlers) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}
