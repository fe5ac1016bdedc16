// Package export gera a planilha de agendamentos baixada pela UI.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/avantivendas/visitas-api/internal/models"
)

const (
	Filename = "agendamentos.xlsx"
	MIMEType = "application/vnd.ms-excel"

	sheet = "Sheet1"
)

// Header da planilha, na ordem do esquema persistido. O id interno nunca
// sai no arquivo; a coluna Usuário só quando pedida.
func header(withOwner bool) []string {
	h := []string{
		"Data", "Hora", "Nome", "Telefone",
		"Fechou?", "Valor(R$)", "CEP", "Observação",
	}
	if withOwner {
		h = append(h, "Usuário")
	}
	return h
}

// Build serializa a listagem como planilha de aba única com linha de
// cabeçalho. Determinístico para a mesma listagem e dono.
func Build(records []models.Agendamento, owner string, withOwner bool) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, toAny(header(withOwner))); err != nil {
		return nil, err
	}

	for i, ag := range records {
		row := []any{
			ag.Data, ag.Hora, ag.Nome, ag.Telefone,
			ag.Fechou, ag.Valor, ag.CEP, ag.Observacao,
		}
		if withOwner {
			row = append(row, owner)
		}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
