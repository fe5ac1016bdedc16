// Package cache decora o repositório de agendamentos com um cache de
// leitura curto, só para aliviar o banco durante re-renderizações da UI.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/avantivendas/visitas-api/internal/domain/agenda"
	"github.com/avantivendas/visitas-api/internal/models"
)

type CachingAgendaRepository struct {
	inner     domain.Repository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingAgendaRepository embrulha o repositório com cache Redis.
// ttl <= 0 vira 10 segundos; rdb nil desliga o cache por completo.
func NewCachingAgendaRepository(rdb *redis.Client, ttl time.Duration, inner domain.Repository) *CachingAgendaRepository {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &CachingAgendaRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: "agendamentos",
	}
}

// Create insere e invalida as chaves do dono e da visão "all", para que
// a própria sessão nunca deixe de ver o que acabou de gravar.
func (c *CachingAgendaRepository) Create(ctx context.Context, ag *models.Agendamento) error {
	if err := c.inner.Create(ctx, ag); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	for _, owner := range []string{ag.Usuario, domain.OwnerAll} {
		// Best effort: falha de invalidação não derruba a gravação.
		_ = c.deleteByPattern(ctx, c.keyPrefix(owner)+"*")
	}
	return nil
}

// List consulta o cache primeiro e cai para o banco quando não há hit.
func (c *CachingAgendaRepository) List(ctx context.Context, filter domain.ListFilter) ([]models.Agendamento, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, filter)
	}

	key := c.key(filter)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []models.Agendamento
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingAgendaRepository) key(filter domain.ListFilter) string {
	return fmt.Sprintf("%s%s", c.keyPrefix(filter.Owner), safe(filter.Data))
}

func (c *CachingAgendaRepository) keyPrefix(owner string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(owner))
}

func (c *CachingAgendaRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
