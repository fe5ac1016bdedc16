// Package session guarda o único estado de sessão além do token: o
// horário sugerido no formulário. A primeira leitura da sessão sugere o
// relógio de exibição; depois disso vale o último horário enviado.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avantivendas/visitas-api/internal/timezone"
)

const keyPrefix = "formdefault:hora:"

// Sessões expiram junto com o token (24h); o default não precisa viver mais.
const defaultTTL = 24 * time.Hour

type FormDefaults struct {
	rdb *redis.Client

	mu    sync.Mutex
	local map[string]string
}

// NewFormDefaults cria o armazenamento dos defaults. Sem Redis (rdb nil)
// os valores ficam em memória do processo.
func NewFormDefaults(rdb *redis.Client) *FormDefaults {
	return &FormDefaults{
		rdb:   rdb,
		local: make(map[string]string),
	}
}

// Hora devolve o horário a pré-preencher para o login. Sem valor
// lembrado, sugere o relógio atual no fuso de exibição.
func (f *FormDefaults) Hora(ctx context.Context, login string) string {
	if f.rdb != nil {
		if v, err := f.rdb.Get(ctx, keyPrefix+login).Result(); err == nil && v != "" {
			return v
		}
		return timezone.Now().Format("15:04")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.local[login]; ok && v != "" {
		return v
	}
	return timezone.Now().Format("15:04")
}

// Remember grava o horário enviado num cadastro bem-sucedido.
func (f *FormDefaults) Remember(ctx context.Context, login, hora string) {
	if f.rdb != nil {
		_ = f.rdb.Set(ctx, keyPrefix+login, hora, defaultTTL).Err()
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.local[login] = hora
}

// Clear descarta o estado da sessão no logout.
func (f *FormDefaults) Clear(ctx context.Context, login string) {
	if f.rdb != nil {
		_ = f.rdb.Del(ctx, keyPrefix+login).Err()
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.local, login)
}
