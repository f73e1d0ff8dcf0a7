package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", apperror.ValidationError("CEP inválido"), http.StatusBadRequest, `{"error":"CEP inválido"}`},
		{"wrapped not found", fmt.Errorf("load: %w", apperror.NotFoundError("Pedido não encontrado")), http.StatusNotFound, `{"error":"Pedido não encontrado"}`},
		{"conflict", apperror.ConflictError("Email já cadastrado"), http.StatusConflict, `{"error":"Email já cadastrado"}`},
		{"plain error hides details", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, `{"error":"Erro interno do servidor"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/test", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
