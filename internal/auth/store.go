// Package auth define o armazenamento de credenciais. Há duas
// implementações, escolhidas por AUTH_MODE: a lista fixa em memória e a
// tabela usuarios com senhas bcrypt.
package auth

import (
	"context"

	"github.com/avantivendas/visitas-api/internal/models"
)

type Principal struct {
	Login string
	Nome  string
	Role  string
}

// CredentialStore verifica login e senha; retorna nil Principal sem erro
// quando as credenciais não batem (o chamador trata como 401).
type CredentialStore interface {
	Authenticate(ctx context.Context, login, senha string) (*Principal, error)
}

type SeedUser struct {
	Nome  string
	Login string
	Senha string
	Role  string
}

// SeedUsers é a equipe cadastrada de fábrica.
func SeedUsers() []SeedUser {
	return []SeedUser{
		{Nome: "Cláudia Costa", Login: "Claudia", Senha: "1501", Role: models.RoleVendedor},
		{Nome: "Evandro Alexandre", Login: "Evandro", Senha: "0512", Role: models.RoleVendedor},
		{Nome: "Renan", Login: "Renan", Senha: "1710", Role: models.RoleVendedor},
		{Nome: "Cauã Moreira", Login: "Caua", Senha: "2805", Role: models.RoleVendedor},
		{Nome: "Supervisão Comercial", Login: "Super", Senha: "0000", Role: models.RoleSupervisor},
	}
}
