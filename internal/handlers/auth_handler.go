package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/botovelho/barbearia-api/internal/config"
	"github.com/botovelho/barbearia-api/internal/middleware"
	"github.com/botovelho/barbearia-api/internal/store"
)

const tokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	store  *store.Store
	config *config.Config
}

func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: st, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request"})
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(doc.Admin.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(doc.Admin.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}

// Check responde sempre 200: o front usa para decidir se mostra a tela
// de login ou o painel.
func (h *AuthHandler) Check(c *gin.Context) {
	claims, ok := middleware.ParseToken(c, h.config)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	role, _ := claims["role"].(string)
	c.JSON(http.StatusOK, gin.H{"authenticated": role == middleware.RoleAdmin})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": middleware.RoleAdmin,
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
