package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	domain "github.com/avantivendas/visitas-api/internal/domain/agenda"
	"github.com/avantivendas/visitas-api/internal/export"
	"github.com/avantivendas/visitas-api/internal/httperr"
	"github.com/avantivendas/visitas-api/internal/httpresp"
	"github.com/avantivendas/visitas-api/internal/middleware"
	ucAgenda "github.com/avantivendas/visitas-api/internal/usecase/agenda"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaHandler struct {
	createUC *ucAgenda.CreateAgendamento
	listUC   *ucAgenda.ListAgendamentos
	exportUC *ucAgenda.ExportAgendamentos
}

func NewAgendaHandler(
	createUC *ucAgenda.CreateAgendamento,
	listUC *ucAgenda.ListAgendamentos,
	exportUC *ucAgenda.ExportAgendamentos,
) *AgendaHandler {
	return &AgendaHandler{
		createUC: createUC,
		listUC:   listUC,
		exportUC: exportUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAgendamentoRequest struct {
	Data       string `json:"Data" binding:"required"`
	Hora       string `json:"Hora" binding:"required"`
	Nome       string `json:"Nome" binding:"required"`
	Telefone   string `json:"Telefone"`
	Fechou     string `json:"Fechou" binding:"required"`
	Valor      string `json:"Valor"`
	CEP        string `json:"CEP" binding:"required"`
	Observacao string `json:"Observacao"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AgendaHandler) Create(c *gin.Context) {
	login := c.MustGet(middleware.ContextLogin).(string)

	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ag, err := h.createUC.Execute(c.Request.Context(), ucAgenda.CreateAgendamentoInput{
		Login:      login,
		Data:       req.Data,
		Hora:       req.Hora,
		Nome:       req.Nome,
		Telefone:   req.Telefone,
		Fechou:     req.Fechou,
		Valor:      req.Valor,
		CEP:        req.CEP,
		Observacao: req.Observacao,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.Created(c, ag)
}

// ======================================================
// LIST
// ======================================================

func (h *AgendaHandler) List(c *gin.Context) {
	in := h.listInput(c)

	items, err := h.listUC.Execute(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// EXPORT
// ======================================================

func (h *AgendaHandler) Export(c *gin.Context) {
	in := h.listInput(c)
	withOwner := c.Query("with_owner") == "true"

	blob, err := h.exportUC.Execute(c.Request.Context(), in, withOwner)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", export.Filename))
	c.Data(200, export.MIMEType, blob)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AgendaHandler) listInput(c *gin.Context) ucAgenda.ListAgendamentosInput {
	return ucAgenda.ListAgendamentosInput{
		Login: c.MustGet(middleware.ContextLogin).(string),
		Role:  c.MustGet(middleware.ContextUserRole).(string),
		Owner: c.Query("owner"),
		Data:  c.Query("data"),
	}
}

func (h *AgendaHandler) writeError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_cep"):
		httperr.BadRequest(c, "invalid_cep", "CEP inválido. Insira 8 dígitos numéricos.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "invalid_fechou"):
		httperr.BadRequest(c, "invalid_fechou", "Situação de fechamento inválida.")
	case httperr.IsBusiness(err, "forbidden_owner_filter"):
		httperr.Forbidden(c, "forbidden_owner_filter", "Sem permissão para ver registros de outros vendedores.")
	case errors.Is(err, domain.ErrStoreUnavailable):
		httperr.Unavailable(c, "store_unavailable", "Banco indisponível. Tente novamente.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
