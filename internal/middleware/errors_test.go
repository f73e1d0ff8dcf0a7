package middleware

import (
	"errors"
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
		{"unauthorized", apperror.UnauthorizedError("Token de acesso requerido"), http.StatusUnauthorized, `{"error":"Token de acesso requerido"}`},
		{"forbidden", apperror.ForbiddenError("Token inválido ou expirado"), http.StatusForbidden, `{"error":"Token inválido ou expirado"}`},
		{"wrapped internal keeps its message", apperror.Wrap(apperror.Internal, InternalErrorMessage, errors.New("dial tcp: timeout")), http.StatusInternalServerError, `{"error":"Erro interno do servidor"}`},
		{"plain error hides details", errors.New("dial tcp: timeout"), http.StatusInternalServerError, `{"error":"Erro interno do servidor"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			r := gin.New()
			r.GET("/private", func(c *gin.Context) { RespondError(c, tt.err) }, func(c *gin.Context) { reached = true })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.False(t, reached, "request must stop at the error")
		})
	}
}
