package agenda

import (
	"context"
	"errors"

	"github.com/avantivendas/visitas-api/internal/models"
)

// OwnerAll lista os registros de todos os vendedores. Só o papel
// supervisor pode usar.
const OwnerAll = "all"

// ErrStoreUnavailable indica banco inacessível; a UI mostra um banner e
// segue renderizando a listagem vazia.
var ErrStoreUnavailable = errors.New("record store unavailable")

type ListFilter struct {
	// Owner é o login dono dos registros, ou OwnerAll.
	Owner string

	// Data filtra por dia (DD/MM/YYYY). Vazio = todos os dias.
	Data string
}

type Repository interface {
	Create(
		ctx context.Context,
		ag *models.Agendamento,
	) error

	// List devolve sempre do mais novo para o mais antigo (id desc).
	List(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Agendamento, error)
}
