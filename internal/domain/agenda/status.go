package agenda

import "github.com/avantivendas/visitas-api/internal/httperr"

// ===============================
// Situação do fechamento
// ===============================

type Fechou string

const (
	FechouSim        Fechou = "Sim"
	FechouNao        Fechou = "Não"
	FechouNegociando Fechou = "Em negociação"
)

func ValidateFechou(v string) error {
	switch Fechou(v) {
	case FechouSim, FechouNao, FechouNegociando:
		return nil
	}
	return httperr.ErrBusiness("invalid_fechou")
}
