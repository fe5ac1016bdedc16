package agenda

import (
	"context"

	"github.com/avantivendas/visitas-api/internal/audit"
	domain "github.com/avantivendas/visitas-api/internal/domain/agenda"
	"github.com/avantivendas/visitas-api/internal/export"
	"github.com/avantivendas/visitas-api/internal/format"
)

// ======================================================
// USE CASE
// ======================================================

type ExportAgendamentos struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewExportAgendamentos(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ExportAgendamentos {
	return &ExportAgendamentos{
		repo:  repo,
		audit: audit,
	}
}

// Execute monta o XLSX da listagem visível pelo solicitante, com o valor
// já no formato de exibição, igual à tabela que a UI mostra.
func (uc *ExportAgendamentos) Execute(
	ctx context.Context,
	in ListAgendamentosInput,
	withOwner bool,
) ([]byte, error) {

	filter, err := resolveFilter(in)
	if err != nil {
		return nil, err
	}

	records, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Valor != "" {
			records[i].Valor = format.Currency(records[i].Valor)
		}
	}

	blob, err := export.Build(records, in.Login, withOwner)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Login:  in.Login,
		Action: "export_generated",
		Entity: "agendamento",
		Metadata: map[string]any{
			"rows":       len(records),
			"with_owner": withOwner,
		},
	})

	return blob, nil
}
