package agenda

import (
	"context"

	domain "github.com/avantivendas/visitas-api/internal/domain/agenda"
	"github.com/avantivendas/visitas-api/internal/format"
	"github.com/avantivendas/visitas-api/internal/httperr"
	"github.com/avantivendas/visitas-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ListAgendamentosInput struct {
	Login string
	Role  string

	// Owner e Data são os filtros da visão de supervisão; para
	// vendedores só o próprio login vale.
	Owner string
	Data  string
}

type AgendamentoListItem struct {
	ID         uint   `json:"id"`
	Data       string `json:"Data"`
	Hora       string `json:"Hora"`
	Nome       string `json:"Nome"`
	Telefone   string `json:"Telefone"`
	Fechou     string `json:"Fechou"`
	Valor      string `json:"Valor"`
	CEP        string `json:"CEP"`
	Observacao string `json:"Observacao"`
	Usuario    string `json:"Usuario"`
}

// ======================================================
// USE CASE
// ======================================================

type ListAgendamentos struct {
	repo domain.Repository
}

func NewListAgendamentos(repo domain.Repository) *ListAgendamentos {
	return &ListAgendamentos{repo: repo}
}

// resolveFilter aplica a regra de papel: vendedor enxerga só o que é
// dele; supervisor pode filtrar por dono, dia ou pedir tudo.
func resolveFilter(in ListAgendamentosInput) (domain.ListFilter, error) {
	if in.Role == models.RoleSupervisor {
		owner := in.Owner
		if owner == "" {
			owner = domain.OwnerAll
		}
		return domain.ListFilter{Owner: owner, Data: in.Data}, nil
	}

	if in.Owner != "" && in.Owner != in.Login {
		return domain.ListFilter{}, httperr.ErrBusiness("forbidden_owner_filter")
	}
	return domain.ListFilter{Owner: in.Login, Data: in.Data}, nil
}

func (uc *ListAgendamentos) Execute(
	ctx context.Context,
	in ListAgendamentosInput,
) ([]AgendamentoListItem, error) {

	filter, err := resolveFilter(in)
	if err != nil {
		return nil, err
	}

	records, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]AgendamentoListItem, 0, len(records))
	for _, ag := range records {
		valor := ag.Valor
		if valor != "" {
			valor = format.Currency(valor)
		}
		out = append(out, AgendamentoListItem{
			ID:         ag.ID,
			Data:       ag.Data,
			Hora:       ag.Hora,
			Nome:       ag.Nome,
			Telefone:   ag.Telefone,
			Fechou:     ag.Fechou,
			Valor:      valor,
			CEP:        ag.CEP,
			Observacao: ag.Observacao,
			Usuario:    ag.Usuario,
		})
	}

	return out, nil
}
