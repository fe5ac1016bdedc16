package agenda

import (
	"context"
	"time"

	"github.com/avantivendas/visitas-api/internal/audit"
	domain "github.com/avantivendas/visitas-api/internal/domain/agenda"
	"github.com/avantivendas/visitas-api/internal/format"
	"github.com/avantivendas/visitas-api/internal/httperr"
	"github.com/avantivendas/visitas-api/internal/models"
	"github.com/avantivendas/visitas-api/internal/session"
)

// ======================================================
// INPUT
// ======================================================

type CreateAgendamentoInput struct {
	Login string

	Data       string
	Hora       string
	Nome       string
	Telefone   string
	Fechou     string
	Valor      string
	CEP        string
	Observacao string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAgendamento struct {
	repo     domain.Repository
	defaults *session.FormDefaults
	audit    *audit.Dispatcher
}

func NewCreateAgendamento(
	repo domain.Repository,
	defaults *session.FormDefaults,
	audit *audit.Dispatcher,
) *CreateAgendamento {
	return &CreateAgendamento{
		repo:     repo,
		defaults: defaults,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAgendamento) Execute(
	ctx context.Context,
	in CreateAgendamentoInput,
) (*models.Agendamento, error) {

	// --------------------------------------------------
	// 1. Data e hora da visita
	// --------------------------------------------------
	if _, err := time.Parse("02/01/2006", in.Data); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Hora); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Situação do fechamento
	// --------------------------------------------------
	if err := domain.ValidateFechou(in.Fechou); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. CEP obrigatório, persiste só normalizado
	// --------------------------------------------------
	cep, err := format.MaskCEP(in.CEP)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Telefone ganha máscara quando tem 10/11 dígitos
	// --------------------------------------------------
	telefone := format.MaskPhone(in.Telefone)

	// --------------------------------------------------
	// 5. Gravação, com o dono carimbado pelo servidor
	// --------------------------------------------------
	ag := &models.Agendamento{
		Data:       in.Data,
		Hora:       in.Hora,
		Nome:       in.Nome,
		Telefone:   telefone,
		Fechou:     in.Fechou,
		Valor:      in.Valor,
		CEP:        cep,
		Observacao: in.Observacao,
		Usuario:    in.Login,
	}

	if err := uc.repo.Create(ctx, ag); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Próximo formulário abre no horário enviado
	// --------------------------------------------------
	uc.defaults.Remember(ctx, in.Login, in.Hora)

	// --------------------------------------------------
	// 7. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Login:    in.Login,
		Action:   "agendamento_created",
		Entity:   "agendamento",
		EntityID: &ag.ID,
	})

	return ag, nil
}
