package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
	"github.com/01moynul/aguadelivery-golang/internal/identity"
	"github.com/01moynul/aguadelivery-golang/internal/middleware"
	"github.com/01moynul/aguadelivery-golang/internal/models"
	"github.com/01moynul/aguadelivery-golang/internal/store"
)

var errEmailTaken = apperror.ConflictError("Email já cadastrado")

// --- User Registration ---

type RegisterUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates the account at the identity provider and then the
// matching profile row.
func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input RegisterUserInput
	if !bindJSON(c, &input, "Nome, email e senha são obrigatórios") {
		return
	}
	email := strings.TrimSpace(input.Email)

	// 2. --- Create Identity ---
	ident, err := h.Identity.SignUp(c.Request.Context(), email, input.Password)
	if err != nil {
		if errors.Is(err, identity.ErrSignUpRejected) {
			respondError(c, errEmailTaken)
			return
		}
		respondError(c, fmt.Errorf("sign up: %w", err))
		return
	}

	// 3. --- Save Profile Row ---
	user := &models.User{
		ID:           ident.ID,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: ident.PasswordHash,
		Addresses:    []models.Address{},
		CreditCards:  []models.CreditCard{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Users.InsertUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(c, errEmailTaken)
			return
		}
		respondError(c, fmt.Errorf("insert user: %w", err))
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário criado com sucesso",
		"user":    user,
	})
}

// --- User Login ---

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if !bindJSON(c, &input, "Email e senha são obrigatórios") {
		return
	}

	// 2. --- Check Credentials ---
	session, err := h.Identity.SignIn(c.Request.Context(), strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			respondError(c, apperror.UnauthorizedError("Credenciais inválidas"))
			return
		}
		respondError(c, fmt.Errorf("sign in: %w", err))
		return
	}

	// 3. --- Load Profile ---
	user, err := h.Profile.Profile(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso",
		"token":   session.AccessToken,
		"user":    user,
	})
}

// --- Token Verification ---

// Verify returns the profile of the token's owner.
func (h *Handlers) Verify(c *gin.Context) {
	user, err := h.Profile.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
