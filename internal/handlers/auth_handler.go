package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/avantivendas/visitas-api/internal/audit"
	"github.com/avantivendas/visitas-api/internal/auth"
	"github.com/avantivendas/visitas-api/internal/config"
	"github.com/avantivendas/visitas-api/internal/httperr"
	"github.com/avantivendas/visitas-api/internal/middleware"
	"github.com/avantivendas/visitas-api/internal/session"
)

type AuthHandler struct {
	store    auth.CredentialStore
	defaults *session.FormDefaults
	audit    *audit.Dispatcher
	config   *config.Config
}

func NewAuthHandler(
	store auth.CredentialStore,
	defaults *session.FormDefaults,
	auditDispatcher *audit.Dispatcher,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		store:    store,
		defaults: defaults,
		audit:    auditDispatcher,
		config:   cfg,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Login string `json:"login" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	principal, err := h.store.Authenticate(c.Request.Context(), req.Login, req.Senha)
	if err != nil {
		httperr.Unavailable(c, "auth_store_unavailable", "Não foi possível validar as credenciais.")
		return
	}
	if principal == nil {
		httperr.Unauthorized(c, "invalid_credentials", "Login ou senha inválidos.")
		return
	}

	token, err := h.generateToken(principal)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar o token.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Login:  principal.Login,
		Action: "login",
		Entity: "usuario",
	})

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"login": principal.Login,
			"nome":  principal.Nome,
			"role":  principal.Role,
		},
		"token": token,
	})
}

// Logout descarta o estado de sessão do servidor (o horário lembrado do
// formulário). O token em si só expira; o cliente o joga fora.
func (h *AuthHandler) Logout(c *gin.Context) {
	login := c.MustGet(middleware.ContextLogin).(string)

	h.defaults.Clear(c.Request.Context(), login)

	h.audit.Dispatch(audit.Event{
		Login:  login,
		Action: "logout",
		Entity: "usuario",
	})

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(p *auth.Principal) (string, error) {
	claims := jwt.MapClaims{
		"sub":  p.Login,
		"nome": p.Nome,
		"role": p.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
