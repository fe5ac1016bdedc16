package auth

import (
	"context"
	"crypto/subtle"
)

// MemoryStore compara a senha em texto puro contra a lista fixa,
// em tempo constante.
type MemoryStore struct {
	users []SeedUser
}

func NewMemoryStore(users []SeedUser) *MemoryStore {
	return &MemoryStore{users: users}
}

func (s *MemoryStore) Authenticate(
	_ context.Context,
	login, senha string,
) (*Principal, error) {

	for _, u := range s.users {
		loginOK := subtle.ConstantTimeCompare([]byte(u.Login), []byte(login)) == 1
		senhaOK := subtle.ConstantTimeCompare([]byte(u.Senha), []byte(senha)) == 1
		if loginOK && senhaOK {
			return &Principal{Login: u.Login, Nome: u.Nome, Role: u.Role}, nil
		}
	}
	return nil, nil
}
