package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avantivendas/visitas-api/internal/middleware"
	"github.com/avantivendas/visitas-api/internal/session"
)

type MeHandler struct {
	defaults *session.FormDefaults
}

func NewMeHandler(defaults *session.FormDefaults) *MeHandler {
	return &MeHandler{defaults: defaults}
}

// GetMe devolve o principal da sessão e os defaults do formulário (o
// horário a pré-preencher no próximo cadastro).
func (h *MeHandler) GetMe(c *gin.Context) {
	login := c.MustGet(middleware.ContextLogin).(string)
	nome := c.MustGet(middleware.ContextNome).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"login": login,
			"nome":  nome,
			"role":  role,
		},
		"form_defaults": gin.H{
			"hora": h.defaults.Hora(c.Request.Context(), login),
		},
	})
}
